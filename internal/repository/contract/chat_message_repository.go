package contract

import (
	"context"

	"corp-portal-be/internal/entity"
)

// ChatMessageRepository is the append-only message store adapter.
type ChatMessageRepository interface {
	// Create writes one immutable record. The caller assigns the timestamp.
	Create(ctx context.Context, msg *entity.ChatMessage) error

	// RecentHistory returns at most limit of the newest messages for the
	// department, ordered ascending by creation time (ties broken by
	// insertion order). An empty department history is an empty slice,
	// not an error.
	RecentHistory(ctx context.Context, department string, limit int) ([]*entity.ChatMessage, error)
}
