package models

import "gorm.io/gorm"

// Review — отзыв клиента. Публичные отзывы публикуются сразу (auto-publish).
type Review struct {
	gorm.Model
	Content    string `json:"content" gorm:"type:TEXT"`
	ContentEt  string `json:"content_et" gorm:"type:TEXT"`
	ContentRu  string `json:"content_ru" gorm:"type:TEXT"`
	AuthorName string `json:"author_name" gorm:"type:VARCHAR(255);not null"`
	Rating     int    `json:"rating" gorm:"default:5"`
	Published  bool   `json:"published" gorm:"default:false;index"`
}
