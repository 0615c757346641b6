package dto

import "github.com/google/uuid"

type RegisterRequest struct {
	EmployeeCode string `json:"employeeId" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Position     string `json:"position"`
	Department   string `json:"department"`
	Password     string `json:"password" validate:"required,min=6"`
	Role         string `json:"role"`
	Email        string `json:"email" validate:"omitempty,email"`
}

type LoginRequest struct {
	EmployeeCode string `json:"employeeId" validate:"required"`
	Password     string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token        string    `json:"token"`
	Id           uuid.UUID `json:"id"`
	EmployeeCode string    `json:"employeeId"`
	Name         string    `json:"name"`
	Position     string    `json:"position"`
	Department   string    `json:"department"`
	Role         string    `json:"role"`
}

type MeResponse struct {
	Id           uuid.UUID `json:"id"`
	EmployeeCode string    `json:"employeeId"`
	Name         string    `json:"name"`
	Position     string    `json:"position"`
	Department   string    `json:"department"`
	Role         string    `json:"role"`
	Email        *string   `json:"email,omitempty"`
}

type UpdateProfileRequest struct {
	Name       *string `json:"name"`
	Position   *string `json:"position"`
	Department *string `json:"department"`
	Email      *string `json:"email" validate:"omitempty,email"`
}
