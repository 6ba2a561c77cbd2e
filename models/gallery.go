package models

import "gorm.io/gorm"

// GalleryItem — фотография кабинета/работ. Картинка обязательна.
type GalleryItem struct {
	gorm.Model
	Title         string `json:"title" gorm:"type:VARCHAR(255);not null"`
	TitleRu       string `json:"title_ru" gorm:"type:VARCHAR(255);not null"`
	Description   string `json:"description" gorm:"type:TEXT"`
	DescriptionRu string `json:"description_ru" gorm:"type:TEXT"`
	ImageURL      string `json:"image_url" gorm:"type:TEXT;not null"`
}
