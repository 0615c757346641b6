package implementation

import (
	"context"

	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/model"
	"corp-portal-be/internal/repository/contract"

	"gorm.io/gorm"
)

type SystemLogRepositoryImpl struct {
	db *gorm.DB
}

func NewSystemLogRepository(db *gorm.DB) contract.SystemLogRepository {
	return &SystemLogRepositoryImpl{db: db}
}

func (r *SystemLogRepositoryImpl) Create(ctx context.Context, entry *entity.SystemLog) error {
	row := &model.SystemLog{
		Id:        entry.Id,
		EventType: entry.EventType,
		Payload:   entry.Payload,
		CreatedAt: entry.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	entry.Id = row.Id
	entry.CreatedAt = row.CreatedAt
	return nil
}
