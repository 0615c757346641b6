package contract

import (
	"context"

	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/repository/specification"

	"github.com/google/uuid"
)

type KnowledgeRepository interface {
	Create(ctx context.Context, item *entity.KnowledgeItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.KnowledgeItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeItem, error)
}
