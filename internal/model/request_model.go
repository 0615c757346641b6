package model

import (
	"time"

	"github.com/google/uuid"
)

type Request struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Type         string     `gorm:"type:varchar(255);not null"`
	EmployeeCode string     `gorm:"type:varchar(64);index;not null"`
	EmployeeName string     `gorm:"type:varchar(255);not null"`
	Details      string     `gorm:"type:text"`
	Status       string     `gorm:"type:varchar(50);not null;default:'pending'"`
	SubmittedAt  time.Time  `gorm:"autoCreateTime;index"`
	StartDate    *time.Time
	EndDate      *time.Time
	AssignedTo   *string `gorm:"type:varchar(255)"`
}
