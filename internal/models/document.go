package models

// DownloadDoc is a downloadable document shown on the public downloads page.
type DownloadDoc struct {
	BaseModel
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"type:varchar(100);index" json:"category"`
	FilePath    string `gorm:"not null" json:"-"`
	FileURL     string `gorm:"-" json:"fileUrl"`
	UploadedBy  string `gorm:"type:uuid" json:"uploadedBy"`
}

// ScheduleFile holds the current sailing-schedule file. The collection is
// treated as a singleton: uploading a new schedule replaces the old row.
type ScheduleFile struct {
	BaseModel
	Title      string `json:"title"`
	FilePath   string `gorm:"not null" json:"-"`
	FileURL    string `gorm:"-" json:"fileUrl"`
	UploadedBy string `gorm:"type:uuid" json:"uploadedBy"`
}
