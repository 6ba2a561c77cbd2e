package models

import "gorm.io/gorm"

// Service — процедура/услуга клиники с ценой.
type Service struct {
	gorm.Model
	Title         string  `json:"title" gorm:"type:VARCHAR(255)"`
	TitleEt       string  `json:"title_et" gorm:"type:VARCHAR(255)"`
	TitleRu       string  `json:"title_ru" gorm:"type:VARCHAR(255)"`
	Description   string  `json:"description" gorm:"type:TEXT"`
	DescriptionEt string  `json:"description_et" gorm:"type:TEXT"`
	DescriptionRu string  `json:"description_ru" gorm:"type:TEXT"`
	Price         float64 `json:"price" gorm:"type:DECIMAL(10,2);not null"`
	Currency      string  `json:"currency" gorm:"type:VARCHAR(10);default:EUR"`
	Duration      string  `json:"duration" gorm:"type:VARCHAR(50)"`
	ImageURL      string  `json:"image_url" gorm:"type:TEXT"`
	Published     bool    `json:"published" gorm:"default:false;index"`
}
