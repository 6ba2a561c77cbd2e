package models

import "gorm.io/gorm"

// Категории материалов по биомеханике стопы.
const (
	BiomechanicsCategoryExercise = "exercise"
	BiomechanicsCategoryHygiene  = "hygiene"
	BiomechanicsCategoryPhysical = "physical"
)

// ValidBiomechanicsCategory проверяет значение enum категории.
func ValidBiomechanicsCategory(c string) bool {
	switch c {
	case BiomechanicsCategoryExercise, BiomechanicsCategoryHygiene, BiomechanicsCategoryPhysical:
		return true
	}
	return false
}

// BiomechanicsItem — материал раздела "Биомеханика" (упражнения, гигиена, нагрузки).
type BiomechanicsItem struct {
	gorm.Model
	Category      string `json:"category" gorm:"type:VARCHAR(20);not null;index"`
	TitleEt       string `json:"title_et" gorm:"type:VARCHAR(255);not null"`
	TitleRu       string `json:"title_ru" gorm:"type:VARCHAR(255)"`
	DescriptionEt string `json:"description_et" gorm:"type:TEXT"`
	DescriptionRu string `json:"description_ru" gorm:"type:TEXT"`
	ContentEt     string `json:"content_et" gorm:"type:TEXT"`
	ContentRu     string `json:"content_ru" gorm:"type:TEXT"`
	ImageURL      string `json:"image_url" gorm:"type:TEXT"`
	IsPublished   bool   `json:"is_published" gorm:"default:false;index"`
}
