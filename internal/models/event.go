package models

import "time"

// EventModel is a site event.
type EventModel struct {
	Base
	EventTitle   string     `json:"EventTitle" gorm:"uniqueIndex;not null"`
	EventURL     string     `json:"EventURL"   gorm:"not null"`
	Description  string     `json:"Description" gorm:"type:longtext"`
	EventDate    time.Time  `json:"EventDate"`
	EventEndDate *time.Time `json:"EventEndDate"`
	Location     string     `json:"Location"`
	Featured     bool       `json:"Featured" gorm:"default:false"`
}

func (EventModel) TableName() string { return "tbl_event" }
