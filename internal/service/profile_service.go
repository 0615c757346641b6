package service

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"corp-portal-be/internal/dto"
	"corp-portal-be/internal/pkg/serverutils"
	"corp-portal-be/internal/repository/contract"
)

type IProfileService interface {
	Get(ctx context.Context, userId uuid.UUID) (*dto.MeResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.MeResponse, error)
}

type profileService struct {
	userRepository contract.UserRepository
}

func NewProfileService(userRepository contract.UserRepository) IProfileService {
	return &profileService{userRepository: userRepository}
}

func (s *profileService) Get(ctx context.Context, userId uuid.UUID) (*dto.MeResponse, error) {
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

func (s *profileService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.MeResponse, error) {
	user, err := s.userRepository.FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewHTTPError(fiber.StatusNotFound, "User not found")
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Position != nil {
		user.Position = *req.Position
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.Email != nil {
		user.Email = req.Email
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepository.Update(ctx, user); err != nil {
		return nil, err
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
