package models

import "gorm.io/gorm"

// Value — пункт блока "Наши ценности" на главной, сортируется по order_index.
type Value struct {
	gorm.Model
	TitleEt       string `json:"title_et" gorm:"type:VARCHAR(255);not null"`
	TitleRu       string `json:"title_ru" gorm:"type:VARCHAR(255);not null"`
	DescriptionEt string `json:"description_et" gorm:"type:TEXT"`
	DescriptionRu string `json:"description_ru" gorm:"type:TEXT"`
	Icon          string `json:"icon" gorm:"type:VARCHAR(100)"`
	OrderIndex    int    `json:"order_index" gorm:"default:0;index"`
	IsActive      bool   `json:"is_active" gorm:"default:true;index"`
}
