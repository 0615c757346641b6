package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeCode string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Position     string    `gorm:"type:varchar(255)"`
	Department   string    `gorm:"type:varchar(255);index"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(50);not null;default:'employee'"`
	Email        *string   `gorm:"type:varchar(255)"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}
