package model

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text;not null"`
	StartDate   time.Time  `gorm:"not null"`
	EndDate     *time.Time
	// Comma-joined department labels; split/joined by the mapper.
	Departments string    `gorm:"type:text;not null"`
	ImageURL    *string   `gorm:"type:text"`
	ObjectKey   *string   `gorm:"type:varchar(512)"`
	IsCompleted bool      `gorm:"default:false;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
}
