package entity

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	Id          uuid.UUID
	Title       string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	Departments []string
	ImageURL    *string
	ObjectKey   *string
	IsCompleted bool
	CreatedAt   time.Time
}
