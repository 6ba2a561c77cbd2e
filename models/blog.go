package models

import "gorm.io/gorm"

// BlogPost хранит статью блога с эстонской и русской локализациями.
// Поля без суффикса — legacy-колонки первых версий схемы, участвуют
// в цепочке фолбэков локализации.
type BlogPost struct {
	gorm.Model
	Title         string `json:"title" gorm:"type:VARCHAR(255)"`
	TitleEt       string `json:"title_et" gorm:"type:VARCHAR(255)"`
	TitleRu       string `json:"title_ru" gorm:"type:VARCHAR(255)"`
	Description   string `json:"description" gorm:"type:TEXT"`
	DescriptionEt string `json:"description_et" gorm:"type:TEXT"`
	DescriptionRu string `json:"description_ru" gorm:"type:TEXT"`
	Content       string `json:"content" gorm:"type:TEXT"`
	ContentEt     string `json:"content_et" gorm:"type:TEXT"`
	ContentRu     string `json:"content_ru" gorm:"type:TEXT"`
	ImageURL      string `json:"image_url" gorm:"type:TEXT"`
	Slug          string `json:"slug" gorm:"type:VARCHAR(255);uniqueIndex"`
	Published     bool   `json:"published" gorm:"default:false;index"`
}
