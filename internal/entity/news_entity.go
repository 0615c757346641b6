package entity

import (
	"time"

	"github.com/google/uuid"
)

type News struct {
	Id        uuid.UUID
	Title     string
	Content   string
	Author    string
	ImageURL  *string
	ObjectKey *string
	CreatedAt time.Time
}
