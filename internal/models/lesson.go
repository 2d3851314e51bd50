package models

import (
	"time"

	"github.com/google/uuid"
)

type Lesson struct {
	ID           uuid.UUID `json:"id"`
	StudyTopicID uuid.UUID `json:"study_topic_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

type LessonRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
