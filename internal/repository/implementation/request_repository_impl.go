package implementation

import (
	"context"
	"errors"

	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/mapper"
	"corp-portal-be/internal/model"
	"corp-portal-be/internal/repository/contract"
	"corp-portal-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewRequestRepository(db *gorm.DB) contract.RequestRepository {
	return &RequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *RequestRepositoryImpl) Create(ctx context.Context, req *entity.Request) error {
	modelReq := r.mapper.RequestToModel(req)
	if err := r.db.WithContext(ctx).Create(modelReq).Error; err != nil {
		return err
	}
	*req = *r.mapper.RequestToEntity(modelReq)
	return nil
}

func (r *RequestRepositoryImpl) Update(ctx context.Context, req *entity.Request) error {
	modelReq := r.mapper.RequestToModel(req)
	if err := r.db.WithContext(ctx).Save(modelReq).Error; err != nil {
		return err
	}
	*req = *r.mapper.RequestToEntity(modelReq)
	return nil
}

func (r *RequestRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Request, error) {
	var row model.Request
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.RequestToEntity(&row), nil
}

func (r *RequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Request, error) {
	var rows []*model.Request
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.mapper.RequestToEntities(rows), nil
}
