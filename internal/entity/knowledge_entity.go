package entity

import (
	"time"

	"github.com/google/uuid"
)

type KnowledgeItem struct {
	Id        uuid.UUID
	Title     string
	Content   string
	Category  string
	Author    string
	CreatedAt time.Time
}
