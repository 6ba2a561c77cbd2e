package database

import (
	"gorm.io/gorm"

	"github.com/Sh4dowyy/podoloog-sub000/models"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Credential{},
		&models.BlogPost{},
		&models.Review{},
		&models.Service{},
		&models.Product{},
		&models.BrandProduct{},
		&models.Value{},
		&models.BiomechanicsItem{},
		&models.GalleryItem{},
	)
}
