package service

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"corp-portal-be/internal/dto"
	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/pkg/serverutils"
	"corp-portal-be/internal/repository/contract"
	"corp-portal-be/internal/repository/specification"
)

type IKnowledgeService interface {
	Create(ctx context.Context, req *dto.CreateKnowledgeRequest, author string) (*dto.KnowledgeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*dto.KnowledgeResponse, error)
}

type knowledgeService struct {
	knowledgeRepository contract.KnowledgeRepository
}

func NewKnowledgeService(knowledgeRepository contract.KnowledgeRepository) IKnowledgeService {
	return &knowledgeService{knowledgeRepository: knowledgeRepository}
}

func (s *knowledgeService) Create(ctx context.Context, req *dto.CreateKnowledgeRequest, author string) (*dto.KnowledgeResponse, error) {
	item := &entity.KnowledgeItem{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		Author:    author,
		CreatedAt: time.Now(),
	}
	if err := s.knowledgeRepository.Create(ctx, item); err != nil {
		return nil, err
	}
	return toKnowledgeResponse(item), nil
}

func (s *knowledgeService) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.knowledgeRepository.FindById(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return serverutils.NewHTTPError(fiber.StatusNotFound, "Knowledge item not found")
	}
	return s.knowledgeRepository.Delete(ctx, id)
}

func (s *knowledgeService) List(ctx context.Context) ([]*dto.KnowledgeResponse, error) {
	items, err := s.knowledgeRepository.FindAll(ctx, specification.OrderBy{Column: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.KnowledgeResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toKnowledgeResponse(item))
	}
	return responses, nil
}

func toKnowledgeResponse(item *entity.KnowledgeItem) *dto.KnowledgeResponse {
	return &dto.KnowledgeResponse{
		Id:        item.Id,
		Title:     item.Title,
		Content:   item.Content,
		Category:  item.Category,
		Author:    item.Author,
		CreatedAt: item.CreatedAt,
	}
}
