package models

// CommunityPost mirrors the backend's forum post record. AuthorID drives the
// owner-or-admin check on mutations.
type CommunityPost struct {
	ID        string `json:"id"`
	AuthorID  string `json:"authorId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// CommunityReply mirrors the backend's forum reply record.
type CommunityReply struct {
	ID        string `json:"id"`
	PostID    string `json:"postId"`
	AuthorID  string `json:"authorId"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt,omitempty"`
}
