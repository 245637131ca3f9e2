package dto

// CreateTopicRequest creates a course topic.
type CreateTopicRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Image       string `json:"image,omitempty"`
	Difficulty  string `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// UpdateTopicRequest updates a course topic.
type UpdateTopicRequest struct {
	Title       string `json:"title,omitempty" validate:"omitempty,min=2,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Image       string `json:"image,omitempty"`
	Difficulty  string `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
}
