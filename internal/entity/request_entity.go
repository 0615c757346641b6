package entity

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
	RequestStatusDone     RequestStatus = "done"
)

type Request struct {
	Id           uuid.UUID
	Type         string
	EmployeeCode string
	EmployeeName string
	Details      string
	Status       RequestStatus
	SubmittedAt  time.Time
	StartDate    *time.Time
	EndDate      *time.Time
	AssignedTo   *string
}
