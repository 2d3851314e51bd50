package models

import (
	"time"

	"github.com/google/uuid"
)

type Text struct {
	ID        uuid.UUID `json:"id"`
	LessonID  uuid.UUID `json:"lesson_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type TextRequest struct {
	Title string `json:"title"`
}

type Paragraph struct {
	ID          uuid.UUID `json:"id"`
	TextID      uuid.UUID `json:"text_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type ParagraphRequest struct {
	Description string `json:"description"`
}
