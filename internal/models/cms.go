package models

// CmsModel is a keyed text block rendered on a public page. Rows are seeded
// out of band; the API only updates them in place.
type CmsModel struct {
	Base
	PageName string `json:"CmsPageName" gorm:"uniqueIndex;not null"`
	Text     string `json:"CmsText"     gorm:"type:longtext"`
}

func (CmsModel) TableName() string { return "tbl_cms" }
