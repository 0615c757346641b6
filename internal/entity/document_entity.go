package entity

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	Id          uuid.UUID
	Title       string
	Description string
	Category    string
	FileURL     string
	ObjectKey   *string
	UploadedAt  time.Time
}
