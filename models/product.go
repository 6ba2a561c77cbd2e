package models

import "gorm.io/gorm"

// Категории товаров бренда.
const (
	ProductCategoryCream    = "cream"
	ProductCategoryTool     = "tool"
	ProductCategorySolution = "solution"
	ProductCategoryDevice   = "device"
	ProductCategoryOther    = "other"
)

// ValidProductCategory проверяет значение enum категории.
func ValidProductCategory(c string) bool {
	switch c {
	case ProductCategoryCream, ProductCategoryTool, ProductCategorySolution,
		ProductCategoryDevice, ProductCategoryOther:
		return true
	}
	return false
}

// Product — бренд, под которым продаются товары (Gehwol, Allpresan и т.п.)
type Product struct {
	gorm.Model
	Name          string `json:"name" gorm:"type:VARCHAR(255)"`
	NameEt        string `json:"name_et" gorm:"type:VARCHAR(255)"`
	NameRu        string `json:"name_ru" gorm:"type:VARCHAR(255)"`
	Description   string `json:"description" gorm:"type:TEXT"`
	DescriptionEt string `json:"description_et" gorm:"type:TEXT"`
	DescriptionRu string `json:"description_ru" gorm:"type:TEXT"`
	Published     bool   `json:"published" gorm:"default:false;index"`
}

// BrandProduct — конкретный товар бренда.
type BrandProduct struct {
	gorm.Model
	BrandID       uint    `json:"brand_id" gorm:"not null;index"`
	Brand         Product `json:"-" gorm:"foreignKey:BrandID;references:ID"`
	Name          string  `json:"name" gorm:"type:VARCHAR(255)"`
	NameEt        string  `json:"name_et" gorm:"type:VARCHAR(255)"`
	NameRu        string  `json:"name_ru" gorm:"type:VARCHAR(255)"`
	Description   string  `json:"description" gorm:"type:TEXT"`
	DescriptionEt string  `json:"description_et" gorm:"type:TEXT"`
	DescriptionRu string  `json:"description_ru" gorm:"type:TEXT"`
	Category      string  `json:"category" gorm:"type:VARCHAR(20);default:other;index"`
	ImageURL      string  `json:"image_url" gorm:"type:TEXT"`
	Published     bool    `json:"published" gorm:"default:false;index"`
}
