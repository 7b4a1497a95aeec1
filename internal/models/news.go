package models

// NewsModel is a news article. Every article belongs to a category.
type NewsModel struct {
	Base
	CatID                string `json:"CatId" gorm:"type:char(36);index;not null"`
	NewsTitle            string `json:"NewsTitle" gorm:"uniqueIndex;not null"`
	NewsURL              string `json:"NewsURL"   gorm:"not null"`
	NewsDescription      string `json:"NewsDescription"      gorm:"type:longtext"`
	NewsShortDescription string `json:"NewsShortDescription" gorm:"type:text"`
	Image                string `json:"Image" gorm:"not null"` // "news" partition

	Category *CategoryModel `json:"category,omitempty" gorm:"foreignKey:CatID"`
}

func (NewsModel) TableName() string { return "tbl_news" }
