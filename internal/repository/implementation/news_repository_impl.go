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

type NewsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewNewsRepository(db *gorm.DB) contract.NewsRepository {
	return &NewsRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *NewsRepositoryImpl) Create(ctx context.Context, news *entity.News) error {
	modelNews := r.mapper.NewsToModel(news)
	if err := r.db.WithContext(ctx).Create(modelNews).Error; err != nil {
		return err
	}
	*news = *r.mapper.NewsToEntity(modelNews)
	return nil
}

func (r *NewsRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.News{}).Error
}

func (r *NewsRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.News, error) {
	var row model.News
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.NewsToEntity(&row), nil
}

func (r *NewsRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.News, error) {
	var rows []*model.News
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.mapper.NewsToEntities(rows), nil
}
