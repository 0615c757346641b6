package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage rows are append-only; there is no UpdatedAt on purpose.
// Seq records insertion order so history replay stays stable when two
// messages land on the same timestamp.
type ChatMessage struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Seq        int64     `gorm:"autoIncrement;uniqueIndex"`
	Department string    `gorm:"type:varchar(255);index:idx_chat_messages_department_created_at,priority:1;not null"`
	SenderId   string    `gorm:"type:varchar(64);not null"`
	SenderName string    `gorm:"type:varchar(255);not null"`
	Text       string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"index:idx_chat_messages_department_created_at,priority:2"`
}
