package videodto

// PublishVideoInput carries the text fields of a multipart publish request.
// The handler fills the file paths after saving the uploads.
type PublishVideoInput struct {
	Title         string `json:"title" validate:"max=200"`
	Description   string `json:"description" validate:"max=5000"`
	VideoPath     string `json:"-"`
	ThumbnailPath string `json:"-"`
}

// UpdateVideoInput replaces the title, description and thumbnail together.
type UpdateVideoInput struct {
	Title         string `json:"title" validate:"not_blank,max=200"`
	Description   string `json:"description" validate:"not_blank,max=5000"`
	ThumbnailPath string `json:"-"`
}
