package models

import "gorm.io/gorm"

// Permission grants a user access to a named admin capability
type Permission struct {
	gorm.Model
	UserID     uint   `json:"user_id" gorm:"index;not null"`
	Permission string `json:"permission" gorm:"not null"` // e.g. MANAGE_COURSES, VIEW_DASHBOARD
	GrantedBy  uint   `json:"granted_by"`
	IsDeleted  bool   `gorm:"default:false"`
}
