package dto

// Gallery and document metadata arrives as multipart form fields alongside
// the file part, hence the form tags.

type GalleryItemRequest struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description"`
	Category    string `form:"category"`
}

type BlogPostRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required,min=1,max=100"`
}

type CategoryUpdateRequest struct {
	Name string `json:"name" validate:"required"`
}

type DownloadDocRequest struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description"`
	Category    string `form:"category"`
}

type ScheduleFileRequest struct {
	Title string `form:"title"`
}
