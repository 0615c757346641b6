package contract

import (
	"context"

	"corp-portal-be/internal/entity"
)

type SystemLogRepository interface {
	Create(ctx context.Context, entry *entity.SystemLog) error
}
