package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

type ReviewRequest struct {
	MovieID  int64
	UserName string
	Rating   int
	Comment  string
}

type Review struct {
	ID        uuid.UUID
	MovieID   int64
	UserName  string
	Rating    int
	Comment   string
	CreatedAt time.Time
}
