package dto

// CreateLessonRequest creates a lesson under a topic.
type CreateLessonRequest struct {
	TopicID  string `json:"topicId" validate:"required"`
	Title    string `json:"title" validate:"required,min=2,max=150"`
	Content  string `json:"content,omitempty" validate:"omitempty,max=50000"`
	Duration int    `json:"duration,omitempty" validate:"omitempty,gte=0"`
	Order    int    `json:"order,omitempty" validate:"omitempty,gte=0"`
}

// UpdateLessonRequest updates a lesson.
type UpdateLessonRequest struct {
	Title    string `json:"title,omitempty" validate:"omitempty,min=2,max=150"`
	Content  string `json:"content,omitempty" validate:"omitempty,max=50000"`
	Duration int    `json:"duration,omitempty" validate:"omitempty,gte=0"`
	Order    int    `json:"order,omitempty" validate:"omitempty,gte=0"`
}
