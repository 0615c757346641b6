package implementation

import (
	"context"

	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/mapper"
	"corp-portal-be/internal/model"
	"corp-portal-be/internal/repository/contract"

	"gorm.io/gorm"
)

type ChatMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMessageMapper
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	return &ChatMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMessageMapper(),
	}
}

func (r *ChatMessageRepositoryImpl) Create(ctx context.Context, msg *entity.ChatMessage) error {
	modelMsg := r.mapper.ToModel(msg)
	if err := r.db.WithContext(ctx).Create(modelMsg).Error; err != nil {
		return err
	}
	*msg = *r.mapper.ToEntity(modelMsg)
	return nil
}

func (r *ChatMessageRepositoryImpl) RecentHistory(ctx context.Context, department string, limit int) ([]*entity.ChatMessage, error) {
	var rows []*model.ChatMessage

	// Newest N first, then reversed so the client receives oldest-to-newest.
	// Seq breaks created_at ties by insertion order.
	err := r.db.WithContext(ctx).
		Where("department = ?", department).
		Order("created_at DESC").
		Order("seq DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	return r.mapper.ToEntities(rows), nil
}
