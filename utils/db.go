package utils

import "gorm.io/gorm"

// Глобальный *gorm.DB. Может остаться nil, если БД не сконфигурирована, —
// тогда ручки данных отвечают 503, а не падают.
var db *gorm.DB

func SetDB(database *gorm.DB) {
	db = database
}

func GetDB() *gorm.DB {
	return db
}
