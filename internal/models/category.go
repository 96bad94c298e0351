package models

// Category is a free-form content bucket referenced by slug from gallery
// items, blog posts and documents.
type Category struct {
	BaseModel
	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`
}
