package models

// ContactModel is a message submitted through the public contact form.
type ContactModel struct {
	Base
	FullName string `json:"FullName" gorm:"not null"`
	Email    string `json:"Email"    gorm:"not null"`
	Phone    string `json:"Phone"`
	Subject  string `json:"Subject"`
	Message  string `json:"Message" gorm:"type:longtext;not null"`
}

func (ContactModel) TableName() string { return "tbl_contact" }
