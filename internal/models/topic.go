package models

// Topic mirrors the backend's topic record.
type Topic struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Difficulty  string `json:"difficulty,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// Lesson mirrors the backend's lesson record. TopicID is a backend-enforced
// foreign key; the gateway does not check referential integrity.
type Lesson struct {
	ID        string `json:"id"`
	TopicID   string `json:"topicId"`
	Title     string `json:"title"`
	Content   string `json:"content,omitempty"`
	Duration  int    `json:"duration,omitempty"`
	Order     int    `json:"order,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
