package models

import "encoding/json"

// Assessment mirrors the backend's assessment record. Questions are relayed
// opaquely; their inner shape is owned by the backend.
type Assessment struct {
	ID        string          `json:"id"`
	TopicID   string          `json:"topicId"`
	Title     string          `json:"title"`
	Questions json.RawMessage `json:"questions,omitempty"`
	CreatedAt string          `json:"createdAt,omitempty"`
	UpdatedAt string          `json:"updatedAt,omitempty"`
}
