package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"corp-portal-be/internal/dto"
	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/pkg/logger"
	"corp-portal-be/internal/pkg/serverutils"
	"corp-portal-be/internal/repository/contract"
	"corp-portal-be/internal/repository/specification"
	"corp-portal-be/pkg/events"
	pkgNats "corp-portal-be/pkg/nats"
	"corp-portal-be/pkg/storage"
)

// FileUpload is an incoming multipart file handed from a controller to a
// service that stores it.
type FileUpload struct {
	Reader      io.Reader
	Size        int64
	Filename    string
	ContentType string
}

type INewsService interface {
	Create(ctx context.Context, req *dto.CreateNewsRequest, author string, image *FileUpload) (*dto.NewsResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetById(ctx context.Context, id uuid.UUID) (*dto.NewsResponse, error)
	List(ctx context.Context) ([]*dto.NewsResponse, error)
}

type newsService struct {
	newsRepository contract.NewsRepository
	objectStorage  storage.IObjectStorage
	eventPublisher *pkgNats.Publisher
	log            logger.ILogger
}

func NewNewsService(
	newsRepository contract.NewsRepository,
	objectStorage storage.IObjectStorage,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) INewsService {
	return &newsService{
		newsRepository: newsRepository,
		objectStorage:  objectStorage,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *newsService) Create(ctx context.Context, req *dto.CreateNewsRequest, author string, image *FileUpload) (*dto.NewsResponse, error) {
	news := &entity.News{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		Author:    author,
		CreatedAt: time.Now(),
	}

	if image != nil {
		objectKey := fmt.Sprintf("news/%s-%s", news.Id, image.Filename)
		url, err := s.objectStorage.Upload(ctx, objectKey, image.Reader, image.Size, image.ContentType)
		if err != nil {
			s.log.Error("news", "image upload failed", map[string]interface{}{"error": err.Error()})
			return nil, serverutils.NewHTTPError(fiber.StatusBadGateway, "Failed to store image")
		}
		news.ImageURL = &url
		news.ObjectKey = &objectKey
	}

	if err := s.newsRepository.Create(ctx, news); err != nil {
		return nil, err
	}

	if err := s.eventPublisher.Publish(ctx, events.NewNewsPublished(news.Id.String(), news.Title)); err != nil {
		s.log.Warn("news", "failed to publish event", map[string]interface{}{"error": err.Error()})
	}
	return toNewsResponse(news), nil
}

func (s *newsService) Delete(ctx context.Context, id uuid.UUID) error {
	news, err := s.newsRepository.FindById(ctx, id)
	if err != nil {
		return err
	}
	if news == nil {
		return serverutils.NewHTTPError(fiber.StatusNotFound, "News not found")
	}

	if news.ObjectKey != nil {
		if err := s.objectStorage.Remove(ctx, *news.ObjectKey); err != nil {
			s.log.Warn("news", "failed to remove stored image", map[string]interface{}{
				"object_key": *news.ObjectKey,
				"error":      err.Error(),
			})
		}
	}
	return s.newsRepository.Delete(ctx, id)
}

func (s *newsService) GetById(ctx context.Context, id uuid.UUID) (*dto.NewsResponse, error) {
	news, err := s.newsRepository.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if news == nil {
		return nil, serverutils.NewHTTPError(fiber.StatusNotFound, "News not found")
	}
	return toNewsResponse(news), nil
}

func (s *newsService) List(ctx context.Context) ([]*dto.NewsResponse, error) {
	items, err := s.newsRepository.FindAll(ctx, specification.OrderBy{Column: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.NewsResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toNewsResponse(item))
	}
	return responses, nil
}

func toNewsResponse(news *entity.News) *dto.NewsResponse {
	return &dto.NewsResponse{
		Id:        news.Id,
		Title:     news.Title,
		Content:   news.Content,
		Author:    news.Author,
		ImageURL:  news.ImageURL,
		CreatedAt: news.CreatedAt,
	}
}
