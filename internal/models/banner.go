package models

// BannerModel is a homepage banner. BannerImage stores the generated filename
// inside the "banners" partition of the image store.
type BannerModel struct {
	Base
	BannerImage string `json:"BannerImage" gorm:"not null"`
	BannerTitle string `json:"BannerTitle"`
}

func (BannerModel) TableName() string { return "tbl_banner" }
