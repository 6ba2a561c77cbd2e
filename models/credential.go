package models

import "gorm.io/gorm"

// Credential — диплом/сертификат подолога (страница "Обо мне")
type Credential struct {
	gorm.Model
	TitleEt       string `json:"title_et" gorm:"type:VARCHAR(255);not null"`
	TitleRu       string `json:"title_ru" gorm:"type:VARCHAR(255)"`
	DescriptionEt string `json:"description_et" gorm:"type:TEXT"`
	DescriptionRu string `json:"description_ru" gorm:"type:TEXT"`
	ImageURL      string `json:"image_url" gorm:"type:TEXT"`
	IsPublished   bool   `json:"is_published" gorm:"default:false;index"`
}
