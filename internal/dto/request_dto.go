package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateRequestRequest struct {
	Type      string     `json:"type" validate:"required"`
	Details   string     `json:"details"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

type UpdateRequestStatusRequest struct {
	Status     *string `json:"status"`
	AssignedTo *string `json:"assignedTo"`
}

type RequestResponse struct {
	Id           uuid.UUID  `json:"id"`
	Type         string     `json:"type"`
	EmployeeCode string     `json:"employeeId"`
	EmployeeName string     `json:"employeeName"`
	Details      string     `json:"details"`
	Status       string     `json:"status"`
	SubmittedAt  time.Time  `json:"submissionDate"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	AssignedTo   *string    `json:"assignedTo,omitempty"`
}
