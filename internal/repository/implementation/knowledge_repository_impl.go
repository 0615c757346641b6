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

type KnowledgeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewKnowledgeRepository(db *gorm.DB) contract.KnowledgeRepository {
	return &KnowledgeRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *KnowledgeRepositoryImpl) Create(ctx context.Context, item *entity.KnowledgeItem) error {
	modelItem := r.mapper.KnowledgeToModel(item)
	if err := r.db.WithContext(ctx).Create(modelItem).Error; err != nil {
		return err
	}
	*item = *r.mapper.KnowledgeToEntity(modelItem)
	return nil
}

func (r *KnowledgeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.KnowledgeItem{}).Error
}

func (r *KnowledgeRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.KnowledgeItem, error) {
	var row model.KnowledgeItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.KnowledgeToEntity(&row), nil
}

func (r *KnowledgeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeItem, error) {
	var rows []*model.KnowledgeItem
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.mapper.KnowledgeToEntities(rows), nil
}
