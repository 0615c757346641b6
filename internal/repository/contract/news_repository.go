package contract

import (
	"context"

	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NewsRepository interface {
	Create(ctx context.Context, news *entity.News) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.News, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.News, error)
}
