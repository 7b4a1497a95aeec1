package models

import "time"

// AdminModel represents a dashboard administrator.
type AdminModel struct {
	Base
	Email    string `json:"email"  gorm:"uniqueIndex;not null"`
	Password string `json:"-"      gorm:"not null"`
	Status   int    `json:"status" gorm:"default:1"` // 1 = active

	ResetToken       string     `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
}

func (AdminModel) TableName() string { return "tbl_admin" }
