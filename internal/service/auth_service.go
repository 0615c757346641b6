package service

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"corp-portal-be/internal/dto"
	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/identity"
	"corp-portal-be/internal/pkg/logger"
	"corp-portal-be/internal/pkg/serverutils"
	"corp-portal-be/internal/repository/contract"
	"corp-portal-be/internal/repository/memory"
	"corp-portal-be/internal/repository/specification"
	"corp-portal-be/pkg/events"
	pkgNats "corp-portal-be/pkg/nats"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.MeResponse, error)
}

type authService struct {
	userRepository contract.UserRepository
	verifier       *identity.Verifier
	throttle       *memory.LoginThrottle
	eventPublisher *pkgNats.Publisher
	log            logger.ILogger
}

func NewAuthService(
	userRepository contract.UserRepository,
	verifier *identity.Verifier,
	throttle *memory.LoginThrottle,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) IAuthService {
	return &authService{
		userRepository: userRepository,
		verifier:       verifier,
		throttle:       throttle,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := s.userRepository.FindOne(ctx, specification.ByEmployeeCode{EmployeeCode: req.EmployeeCode})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewHTTPError(fiber.StatusConflict, "Employee ID already registered")
	}

	role := entity.UserRole(req.Role)
	if req.Role == "" {
		role = entity.UserRoleEmployee
	}
	if !role.Valid() {
		return nil, serverutils.NewHTTPError(fiber.StatusBadRequest, "Unknown role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var email *string
	if req.Email != "" {
		email = &req.Email
	}

	user := &entity.User{
		Id:           uuid.New(),
		EmployeeCode: req.EmployeeCode,
		Name:         req.Name,
		Position:     req.Position,
		Department:   req.Department,
		PasswordHash: string(hash),
		Role:         role,
		Email:        email,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.userRepository.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.verifier.Issue(user.Id, user.EmployeeCode, user.Name, string(user.Role))
	if err != nil {
		return nil, err
	}

	if err := s.eventPublisher.Publish(ctx, events.NewUserRegistered(user.EmployeeCode, user.Department)); err != nil {
		s.log.Warn("auth", "failed to publish registration event", map[string]interface{}{"error": err.Error()})
	}

	s.log.Info("auth", "user registered", map[string]interface{}{
		"employee_code": user.EmployeeCode,
		"department":    user.Department,
	})
	return s.authResponse(user, token), nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if s.throttle.Blocked(req.EmployeeCode) {
		return nil, serverutils.NewHTTPError(fiber.StatusTooManyRequests, "Too many failed attempts, try again later")
	}

	user, err := s.userRepository.FindOne(ctx, specification.ByEmployeeCode{EmployeeCode: req.EmployeeCode})
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.throttle.RecordFailure(req.EmployeeCode)
		return nil, serverutils.NewHTTPError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.throttle.RecordFailure(req.EmployeeCode)
		return nil, serverutils.NewHTTPError(fiber.StatusUnauthorized, "Invalid credentials")
	}
	s.throttle.Reset(req.EmployeeCode)

	token, err := s.verifier.Issue(user.Id, user.EmployeeCode, user.Name, string(user.Role))
	if err != nil {
		return nil, err
	}

	if err := s.eventPublisher.Publish(ctx, events.NewUserLogin(user.EmployeeCode)); err != nil {
		s.log.Warn("auth", "failed to publish login event", map[string]interface{}{"error": err.Error()})
	}

	return s.authResponse(user, token), nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.MeResponse, error) {
	user, err := s.userRepository.FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewHTTPError(fiber.StatusNotFound, "User not found")
	}
	return &dto.MeResponse{
		Id:           user.Id,
		EmployeeCode: user.EmployeeCode,
		Name:         user.Name,
		Position:     user.Position,
		Department:   user.Department,
		Role:         string(user.Role),
		Email:        user.Email,
	}, nil
}

func (s *authService) authResponse(user *entity.User, token string) *dto.AuthResponse {
	return &dto.AuthResponse{
		Token:        token,
		Id:           user.Id,
		EmployeeCode: user.EmployeeCode,
		Name:         user.Name,
		Position:     user.Position,
		Department:   user.Department,
		Role:         string(user.Role),
	}
}
