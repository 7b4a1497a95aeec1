package models

// NewsletterModel is a newsletter signup captured from the public site.
type NewsletterModel struct {
	Base
	Email string `json:"Email" gorm:"uniqueIndex;not null"`
}

func (NewsletterModel) TableName() string { return "tbl_newsletter" }
