package dto

// CreatePostRequest creates a forum post.
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=255"`
	Content string `json:"content" validate:"required,min=1,max=10000"`
}

// UpdatePostRequest edits a forum post; only the owner or an admin may apply it.
type UpdatePostRequest struct {
	Title   string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Content string `json:"content,omitempty" validate:"omitempty,min=1,max=10000"`
}

// CreateReplyRequest adds a reply to a post.
type CreateReplyRequest struct {
	PostID  string `json:"postId" validate:"required"`
	Content string `json:"content" validate:"required,min=1,max=10000"`
}
