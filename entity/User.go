package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password  string `json:"-"` // bcrypt hash
	FirstName string `gorm:"not null" json:"firstName"`
	LastName  string `gorm:"not null" json:"lastName"`
	Email     string `gorm:"not null" json:"email"`
	Mobile    string `json:"mobile"`
	Active    bool   `gorm:"not null" json:"active"`
	Role      Role   `gorm:"size:20;not null;default:User" json:"role"`

	// preload only when needed
	Orders []Order `json:"-"`
}
