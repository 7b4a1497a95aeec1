package models

// TestimonialModel is a client testimonial.
type TestimonialModel struct {
	Base
	FullName    string `json:"TFullName"   gorm:"not null"`
	Designation string `json:"designation" gorm:"not null"`
	Testimonial string `json:"testimonial" gorm:"type:longtext;not null"`
	Image       string `json:"Image"` // optional, "testimonial" partition
	Featured    bool   `json:"Featured" gorm:"default:false"`
}

func (TestimonialModel) TableName() string { return "tbl_testimonial" }
