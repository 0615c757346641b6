package contract

import (
	"context"

	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/repository/specification"

	"github.com/google/uuid"
)

type RequestRepository interface {
	Create(ctx context.Context, req *entity.Request) error
	Update(ctx context.Context, req *entity.Request) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.Request, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Request, error)
}
