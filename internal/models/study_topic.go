package models

import (
	"time"

	"github.com/google/uuid"
)

type StudyTopic struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

type StudyTopicRequest struct {
	Name string `json:"name"`
}
