package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName           string     `json:"first_name" gorm:"default:''"`
	LastName            string     `json:"last_name" gorm:"default:''"`
	Email               string     `json:"email" gorm:"unique;not null"`
	Role                string     `json:"role" gorm:"default:'STUDENT'"` // STUDENT, INSTRUCTOR, ADMIN
	Password            string     `json:"-" gorm:"not null"`
	IsEmailVerified     bool       `json:"is_email_verified" gorm:"default:false"`
	LastLogin           time.Time  `json:"last_login" gorm:"default:NULL"`
	FailedLoginAttempts int        `json:"-" gorm:"default:0"`
	BlockedUntil        *time.Time `json:"-"`
	IsDeleted           bool       `json:"-" gorm:"default:false"`
}

// FullName joins first and last name for display and emails
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
