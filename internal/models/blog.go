package models

type BlogPost struct {
	BaseModel
	Title    string `gorm:"not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Category string `gorm:"type:varchar(100);index" json:"category"`
	ImageURL string `json:"imageUrl"`
	AuthorID string `gorm:"type:uuid" json:"authorId"`
}
