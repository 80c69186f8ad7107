package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ProfileImage        string `gorm:"default:''"`
	Name                string `gorm:"default:''"`
	Email               string `gorm:"unique;not null"`
	Mobile              string `gorm:"default:''"`
	Role                string `gorm:"default:'USER'"` // USER, INSTRUCTOR, ADMIN
	Password            string `gorm:"not null"`
	EmployeeCode        string `gorm:"default:''"`
	Department          string `gorm:"default:''"`
	Designation         string `gorm:"default:''"`
	IsEmailVerified     bool   `gorm:"default:false"`
	LastLogin           time.Time
	FailedLoginAttempts int        `gorm:"default:0"`
	LastFailedLogin     *time.Time `json:"last_failed_login"`
	IsBlocked           bool       `gorm:"default:false"`
	BlockedUntil        *time.Time `json:"blocked_until"`
	IsDeleted           bool       `gorm:"default:false"`
}
