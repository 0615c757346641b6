package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleEmployee UserRole = "employee"
	UserRoleManager  UserRole = "manager"
	UserRoleAdmin    UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleEmployee, UserRoleManager, UserRoleAdmin:
		return true
	}
	return false
}

type User struct {
	Id           uuid.UUID
	EmployeeCode string
	Name         string
	Position     string
	Department   string
	PasswordHash string
	Role         UserRole
	Email        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
