package service

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"corp-portal-be/internal/dto"
	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/pkg/logger"
	"corp-portal-be/internal/pkg/mailer"
	"corp-portal-be/internal/pkg/serverutils"
	"corp-portal-be/internal/repository/contract"
	"corp-portal-be/internal/repository/specification"
	"corp-portal-be/pkg/events"
	pkgNats "corp-portal-be/pkg/nats"
)

type IRequestService interface {
	Create(ctx context.Context, req *dto.CreateRequestRequest, employeeCode, employeeName string) (*dto.RequestResponse, error)
	ListMine(ctx context.Context, employeeCode string) ([]*dto.RequestResponse, error)
	ListAll(ctx context.Context, status string) ([]*dto.RequestResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateRequestStatusRequest) (*dto.RequestResponse, error)
}

type requestService struct {
	requestRepository contract.RequestRepository
	userRepository    contract.UserRepository
	emailService      mailer.IEmailService
	eventPublisher    *pkgNats.Publisher
	log               logger.ILogger
}

func NewRequestService(
	requestRepository contract.RequestRepository,
	userRepository contract.UserRepository,
	emailService mailer.IEmailService,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) IRequestService {
	return &requestService{
		requestRepository: requestRepository,
		userRepository:    userRepository,
		emailService:      emailService,
		eventPublisher:    eventPublisher,
		log:               log,
	}
}

func (s *requestService) Create(ctx context.Context, req *dto.CreateRequestRequest, employeeCode, employeeName string) (*dto.RequestResponse, error) {
	request := &entity.Request{
		Id:           uuid.New(),
		Type:         req.Type,
		EmployeeCode: employeeCode,
		EmployeeName: employeeName,
		Details:      req.Details,
		Status:       entity.RequestStatusPending,
		SubmittedAt:  time.Now(),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}
	if err := s.requestRepository.Create(ctx, request); err != nil {
		return nil, err
	}

	if err := s.eventPublisher.Publish(ctx, events.NewRequestSubmitted(request.Id.String(), employeeCode, req.Type)); err != nil {
		s.log.Warn("request", "failed to publish event", map[string]interface{}{"error": err.Error()})
	}
	return toRequestResponse(request), nil
}

func (s *requestService) ListMine(ctx context.Context, employeeCode string) ([]*dto.RequestResponse, error) {
	requests, err := s.requestRepository.FindAll(ctx,
		specification.ByRequestOwner{EmployeeCode: employeeCode},
		specification.OrderBy{Column: "submitted_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return toRequestResponses(requests), nil
}

func (s *requestService) ListAll(ctx context.Context, status string) ([]*dto.RequestResponse, error) {
	specs := []specification.Specification{
		specification.OrderBy{Column: "submitted_at", Desc: true},
	}
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	}
	requests, err := s.requestRepository.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return toRequestResponses(requests), nil
}

func (s *requestService) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateRequestStatusRequest) (*dto.RequestResponse, error) {
	request, err := s.requestRepository.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, serverutils.NewHTTPError(fiber.StatusNotFound, "Request not found")
	}

	statusChanged := false
	if req.Status != nil {
		status := entity.RequestStatus(*req.Status)
		switch status {
		case entity.RequestStatusPending, entity.RequestStatusApproved, entity.RequestStatusRejected, entity.RequestStatusDone:
		default:
			return nil, serverutils.NewHTTPError(fiber.StatusBadRequest, "Unknown status")
		}
		statusChanged = status != request.Status
		request.Status = status
	}
	if req.AssignedTo != nil {
		request.AssignedTo = req.AssignedTo
	}

	if err := s.requestRepository.Update(ctx, request); err != nil {
		return nil, err
	}

	if statusChanged {
		s.notifyOwner(ctx, request)
		if err := s.eventPublisher.Publish(ctx, events.NewRequestStatusChanged(request.Id.String(), string(request.Status))); err != nil {
			s.log.Warn("request", "failed to publish event", map[string]interface{}{"error": err.Error()})
		}
	}
	return toRequestResponse(request), nil
}

// notifyOwner emails the requester about a status change when a profile
// email is on record. Delivery failures are logged, never surfaced.
func (s *requestService) notifyOwner(ctx context.Context, request *entity.Request) {
	owner, err := s.userRepository.FindOne(ctx, specification.ByEmployeeCode{EmployeeCode: request.EmployeeCode})
	if err != nil || owner == nil || owner.Email == nil {
		return
	}
	if err := s.emailService.SendRequestStatusUpdate(*owner.Email, owner.Name, request.Type, string(request.Status)); err != nil {
		s.log.Warn("request", "failed to send status email", map[string]interface{}{
			"employee_code": request.EmployeeCode,
			"error":         err.Error(),
		})
	}
}

func toRequestResponse(request *entity.Request) *dto.RequestResponse {
	return &dto.RequestResponse{
		Id:           request.Id,
		Type:         request.Type,
		EmployeeCode: request.EmployeeCode,
		EmployeeName: request.EmployeeName,
		Details:      request.Details,
		Status:       string(request.Status),
		SubmittedAt:  request.SubmittedAt,
		StartDate:    request.StartDate,
		EndDate:      request.EndDate,
		AssignedTo:   request.AssignedTo,
	}
}

func toRequestResponses(requests []*entity.Request) []*dto.RequestResponse {
	responses := make([]*dto.RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toRequestResponse(request))
	}
	return responses
}
