package models

// CategoryModel is a news category, exposed on the public site as a "key sector".
type CategoryModel struct {
	Base
	CatName string `json:"CatName" gorm:"uniqueIndex;not null"`
	CatURL  string `json:"CatURL"  gorm:"not null"`
	Image   string `json:"Image"` // optional, "keysector" partition

	News []NewsModel `json:"news,omitempty" gorm:"foreignKey:CatID"`
}

func (CategoryModel) TableName() string { return "tbl_category" }
