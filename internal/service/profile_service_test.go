package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corp-portal-be/internal/dto"
	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/pkg/serverutils"
)

func newProfileFixture() (uuid.UUID, *fakeUserRepository, IProfileService) {
	userId := uuid.New()
	users := &fakeUserRepository{users: map[uuid.UUID]*entity.User{
		userId: {
			Id:           userId,
			EmployeeCode: "EMP-100",
			Name:         "Sari",
			Position:     "Analyst",
			Department:   "Finance",
			Role:         entity.UserRoleEmployee,
		},
	}}
	return userId, users, NewProfileService(users)
}

func TestProfileUpdatePatchesFields(t *testing.T) {
	userId, users, svc := newProfileFixture()

	position := "Senior Analyst"
	email := "sari@example.com"
	updated, err := svc.Update(context.Background(), userId, &dto.UpdateProfileRequest{
		Position: &position,
		Email:    &email,
	})
	require.NoError(t, err)

	// Untouched fields keep their values.
	assert.Equal(t, "Sari", updated.Name)
	assert.Equal(t, "Finance", updated.Department)
	assert.Equal(t, "Senior Analyst", updated.Position)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "sari@example.com", *updated.Email)

	require.NotNil(t, users.users[userId].Email)
	assert.Equal(t, "sari@example.com", *users.users[userId].Email)

	got, err := svc.Get(context.Background(), userId)
	require.NoError(t, err)
	require.NotNil(t, got.Email)
	assert.Equal(t, "sari@example.com", *got.Email)
}

func TestProfileUpdateUnknownUser(t *testing.T) {
	_, _, svc := newProfileFixture()

	name := "Nobody"
	_, err := svc.Update(context.Background(), uuid.New(), &dto.UpdateProfileRequest{Name: &name})
	var httpErr *serverutils.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, fiber.StatusNotFound, httpErr.Code)
}
