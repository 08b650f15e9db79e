package commentdto

// CommentInput is the body of comment create and update requests.
type CommentInput struct {
	Content string `json:"content" validate:"not_blank,max=2000"`
}
