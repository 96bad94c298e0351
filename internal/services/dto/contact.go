package dto

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

// ContactConfig is the public slice of the contact configuration.
type ContactConfig struct {
	Recipient     string `json:"recipient"`
	SubjectPrefix string `json:"subjectPrefix"`
}

type TrackingConfig struct {
	TrackingURL string `json:"trackingUrl"`
}
