package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is an immutable, department-partitioned chat record.
// It is created exactly once and never updated or deleted.
type ChatMessage struct {
	Id         uuid.UUID
	Department string
	SenderId   string // employee code of the sender
	SenderName string
	Text       string
	CreatedAt  time.Time
}
