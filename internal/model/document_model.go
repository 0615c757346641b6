package model

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(255)"`
	FileURL     string    `gorm:"type:text;not null"`
	ObjectKey   *string   `gorm:"type:varchar(512)"`
	UploadedAt  time.Time `gorm:"autoCreateTime;index"`
}
