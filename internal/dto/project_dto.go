package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Description string `json:"description" form:"description" validate:"required"`
	StartDate   string `json:"startDate" form:"startDate" validate:"required"`
	EndDate     string `json:"endDate" form:"endDate"`
	// Comma-separated in multipart form data.
	Departments string `json:"departments" form:"departments" validate:"required"`
}

type ProjectResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Departments []string   `json:"departments"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	IsCompleted bool       `json:"isCompleted"`
	CreatedAt   time.Time  `json:"createdAt"`
}
