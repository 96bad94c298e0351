package models

type GalleryItem struct {
	BaseModel
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"type:varchar(100);index" json:"category"`
	ImagePath   string `gorm:"not null" json:"-"`
	ImageURL    string `gorm:"-" json:"imageUrl"`
	UploadedBy  string `gorm:"type:uuid" json:"uploadedBy"`
}
