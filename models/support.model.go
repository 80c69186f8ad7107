package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SupportTicket struct {
	gorm.Model
	UserID    uint           `json:"user_id" gorm:"index;not null"`
	Title     string         `json:"title"`
	Subject   string         `json:"subject"`
	Message   datatypes.JSON `json:"message"` // conversation thread, array of {sender,text,time}
	Status    string         `json:"status" gorm:"default:'OPEN'"` // OPEN, IN_PROGRESS, RESOLVED, CLOSED
	Priority  string         `json:"priority" gorm:"default:'MEDIUM'"`
	Category  string         `json:"category" gorm:"default:'GENERAL'"` // GENERAL, TRAINING, IT, HR
	IsDeleted bool           `json:"is_deleted" gorm:"default:false"`
}
