package playlistdto

// PlaylistInput is the body of playlist create and update requests.
type PlaylistInput struct {
	Name        string `json:"name" validate:"not_blank,max=150"`
	Description string `json:"description" validate:"not_blank,max=2000"`
}
