package model

import (
	"time"

	"github.com/google/uuid"
)

type News struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	Author    string    `gorm:"type:varchar(255);not null"`
	ImageURL  *string   `gorm:"type:text"`
	ObjectKey *string   `gorm:"type:varchar(512)"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}
