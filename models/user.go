package models

import "gorm.io/gorm"

// User — учётная запись администратора панели.
type User struct {
	gorm.Model
	Email    string  `json:"email" gorm:"type:VARCHAR(255);uniqueIndex;not null"`
	Password string  `json:"-"`
	Name     string  `json:"name" gorm:"type:VARCHAR(255)"`
	Role     string  `json:"role" gorm:"type:VARCHAR(20);default:admin"`
	GoogleID *string `json:"-" gorm:"uniqueIndex"`
}
