package service

import (
	"context"
	"fmt"
	"strings"
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

const projectDateLayout = "2006-01-02"

type IProjectService interface {
	Create(ctx context.Context, req *dto.CreateProjectRequest, image *FileUpload) (*dto.ProjectResponse, error)
	Complete(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, completed *bool) ([]*dto.ProjectResponse, error)
}

type projectService struct {
	projectRepository contract.ProjectRepository
	objectStorage     storage.IObjectStorage
	eventPublisher    *pkgNats.Publisher
	log               logger.ILogger
}

func NewProjectService(
	projectRepository contract.ProjectRepository,
	objectStorage storage.IObjectStorage,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) IProjectService {
	return &projectService{
		projectRepository: projectRepository,
		objectStorage:     objectStorage,
		eventPublisher:    eventPublisher,
		log:               log,
	}
}

func parseDepartments(raw string) []string {
	parts := strings.Split(raw, ",")
	departments := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			departments = append(departments, trimmed)
		}
	}
	return departments
}

func (s *projectService) Create(ctx context.Context, req *dto.CreateProjectRequest, image *FileUpload) (*dto.ProjectResponse, error) {
	startDate, err := time.Parse(projectDateLayout, req.StartDate)
	if err != nil {
		return nil, serverutils.NewHTTPError(fiber.StatusBadRequest, "Invalid start date, expected YYYY-MM-DD")
	}

	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := time.Parse(projectDateLayout, req.EndDate)
		if err != nil {
			return nil, serverutils.NewHTTPError(fiber.StatusBadRequest, "Invalid end date, expected YYYY-MM-DD")
		}
		endDate = &parsed
	}

	departments := parseDepartments(req.Departments)
	if len(departments) == 0 {
		return nil, serverutils.NewHTTPError(fiber.StatusBadRequest, "At least one department is required")
	}

	project := &entity.Project{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Departments: departments,
		CreatedAt:   time.Now(),
	}

	if image != nil {
		objectKey := fmt.Sprintf("projects/%s-%s", project.Id, image.Filename)
		url, err := s.objectStorage.Upload(ctx, objectKey, image.Reader, image.Size, image.ContentType)
		if err != nil {
			s.log.Error("project", "image upload failed", map[string]interface{}{"error": err.Error()})
			return nil, serverutils.NewHTTPError(fiber.StatusBadGateway, "Failed to store image")
		}
		project.ImageURL = &url
		project.ObjectKey = &objectKey
	}

	if err := s.projectRepository.Create(ctx, project); err != nil {
		return nil, err
	}

	if err := s.eventPublisher.Publish(ctx, events.NewProjectCreated(project.Id.String(), project.Title)); err != nil {
		s.log.Warn("project", "failed to publish event", map[string]interface{}{"error": err.Error()})
	}
	return toProjectResponse(project), nil
}

func (s *projectService) Complete(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error) {
	project, err := s.projectRepository.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, serverutils.NewHTTPError(fiber.StatusNotFound, "Project not found")
	}

	project.IsCompleted = true
	if project.EndDate == nil {
		now := time.Now()
		project.EndDate = &now
	}
	if err := s.projectRepository.Update(ctx, project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	project, err := s.projectRepository.FindById(ctx, id)
	if err != nil {
		return err
	}
	if project == nil {
		return serverutils.NewHTTPError(fiber.StatusNotFound, "Project not found")
	}

	if project.ObjectKey != nil {
		if err := s.objectStorage.Remove(ctx, *project.ObjectKey); err != nil {
			s.log.Warn("project", "failed to remove stored image", map[string]interface{}{
				"object_key": *project.ObjectKey,
				"error":      err.Error(),
			})
		}
	}
	return s.projectRepository.Delete(ctx, id)
}

func (s *projectService) List(ctx context.Context, completed *bool) ([]*dto.ProjectResponse, error) {
	specs := []specification.Specification{
		specification.OrderBy{Column: "created_at", Desc: true},
	}
	if completed != nil {
		specs = append(specs, specification.ByCompleted{Completed: *completed})
	}
	projects, err := s.projectRepository.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, toProjectResponse(project))
	}
	return responses, nil
}

func toProjectResponse(project *entity.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		Id:          project.Id,
		Title:       project.Title,
		Description: project.Description,
		StartDate:   project.StartDate,
		EndDate:     project.EndDate,
		Departments: project.Departments,
		ImageURL:    project.ImageURL,
		IsCompleted: project.IsCompleted,
		CreatedAt:   project.CreatedAt,
	}
}
