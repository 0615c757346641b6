package service

import (
	"context"
	"fmt"
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

type IDocumentService interface {
	Upload(ctx context.Context, req *dto.CreateDocumentRequest, file *FileUpload) (*dto.DocumentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*dto.DocumentResponse, error)
}

type documentService struct {
	documentRepository contract.DocumentRepository
	objectStorage      storage.IObjectStorage
	eventPublisher     *pkgNats.Publisher
	log                logger.ILogger
}

func NewDocumentService(
	documentRepository contract.DocumentRepository,
	objectStorage storage.IObjectStorage,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		documentRepository: documentRepository,
		objectStorage:      objectStorage,
		eventPublisher:     eventPublisher,
		log:                log,
	}
}

func (s *documentService) Upload(ctx context.Context, req *dto.CreateDocumentRequest, file *FileUpload) (*dto.DocumentResponse, error) {
	if file == nil {
		return nil, serverutils.NewHTTPError(fiber.StatusBadRequest, "Document file is required")
	}

	doc := &entity.Document{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		UploadedAt:  time.Now(),
	}

	objectKey := fmt.Sprintf("documents/%s-%s", doc.Id, file.Filename)
	url, err := s.objectStorage.Upload(ctx, objectKey, file.Reader, file.Size, file.ContentType)
	if err != nil {
		s.log.Error("document", "file upload failed", map[string]interface{}{"error": err.Error()})
		return nil, serverutils.NewHTTPError(fiber.StatusBadGateway, "Failed to store document")
	}
	doc.FileURL = url
	doc.ObjectKey = &objectKey

	if err := s.documentRepository.Create(ctx, doc); err != nil {
		return nil, err
	}

	if err := s.eventPublisher.Publish(ctx, events.NewDocumentUploaded(doc.Id.String(), doc.Title)); err != nil {
		s.log.Warn("document", "failed to publish event", map[string]interface{}{"error": err.Error()})
	}
	return toDocumentResponse(doc), nil
}

func (s *documentService) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := s.documentRepository.FindById(ctx, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return serverutils.NewHTTPError(fiber.StatusNotFound, "Document not found")
	}

	if doc.ObjectKey != nil {
		if err := s.objectStorage.Remove(ctx, *doc.ObjectKey); err != nil {
			s.log.Warn("document", "failed to remove stored file", map[string]interface{}{
				"object_key": *doc.ObjectKey,
				"error":      err.Error(),
			})
		}
	}
	return s.documentRepository.Delete(ctx, id)
}

func (s *documentService) List(ctx context.Context) ([]*dto.DocumentResponse, error) {
	docs, err := s.documentRepository.FindAll(ctx, specification.OrderBy{Column: "uploaded_at", Desc: true})
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		responses = append(responses, toDocumentResponse(doc))
	}
	return responses, nil
}

func toDocumentResponse(doc *entity.Document) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		Id:          doc.Id,
		Title:       doc.Title,
		Description: doc.Description,
		Category:    doc.Category,
		FileURL:     doc.FileURL,
		UploadedAt:  doc.UploadedAt,
	}
}
