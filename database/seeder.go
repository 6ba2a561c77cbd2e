package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/Sh4dowyy/podoloog-sub000/config"
	"github.com/Sh4dowyy/podoloog-sub000/models"
	"github.com/Sh4dowyy/podoloog-sub000/utils"
)

// SeedAdmin заводит первичного администратора из ADMIN_EMAIL/ADMIN_PASSWORD,
// если таблица users пуста.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}
	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin := models.User{
		Email:    cfg.AdminEmail,
		Password: hash,
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedValues заполняет блок "Наши ценности" значениями по умолчанию,
// если таблица пуста. Порядок задаётся order_index.
func SeedValues(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Value{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	values := []models.Value{
		{TitleEt: "Professionaalsus", TitleRu: "Профессионализм", Icon: "award", OrderIndex: 1, IsActive: true},
		{TitleEt: "Hoolivus", TitleRu: "Забота", Icon: "heart", OrderIndex: 2, IsActive: true},
		{TitleEt: "Puhtus ja steriilsus", TitleRu: "Чистота и стерильность", Icon: "shield", OrderIndex: 3, IsActive: true},
		{TitleEt: "Individuaalne lähenemine", TitleRu: "Индивидуальный подход", Icon: "user", OrderIndex: 4, IsActive: true},
	}
	return db.Create(&values).Error
}
