package models

import (
	"time"

	"github.com/google/uuid"
)

type Timeline struct {
	ID          uuid.UUID `json:"id"`
	VideoID     uuid.UUID `json:"video_id"`
	Description string    `json:"description"`
	Time        string    `json:"time"`
	CreatedAt   time.Time `json:"created_at"`
}

// Pointer fields so a missing key and an explicit null both read as absent.
type TimelineRequest struct {
	Description *string `json:"description"`
	Time        *string `json:"time"`
}
