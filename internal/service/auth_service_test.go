package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corp-portal-be/internal/dto"
	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/identity"
	"corp-portal-be/internal/pkg/serverutils"
	"corp-portal-be/internal/repository/memory"
	"corp-portal-be/internal/repository/specification"
)

// findOneUserRepository adds employee-code lookup on top of the map fake.
type findOneUserRepository struct {
	fakeUserRepository
}

func (r *findOneUserRepository) FindOne(_ context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, spec := range specs {
		if byCode, ok := spec.(specification.ByEmployeeCode); ok {
			for _, user := range r.users {
				if user.EmployeeCode == byCode.EmployeeCode {
					return user, nil
				}
			}
		}
	}
	return nil, nil
}

func newAuthFixture(t *testing.T) (*findOneUserRepository, IAuthService) {
	t.Helper()
	users := &findOneUserRepository{fakeUserRepository{users: map[uuid.UUID]*entity.User{}}}
	verifier := identity.NewVerifier("test-secret", time.Hour)
	throttle := memory.NewLoginThrottle(3, time.Minute)
	svc := NewAuthService(users, verifier, throttle, nil, nopLogger{})
	return users, svc
}

func TestAuthRegisterAndLogin(t *testing.T) {
	_, svc := newAuthFixture(t)

	registered, err := svc.Register(context.Background(), &dto.RegisterRequest{
		EmployeeCode: "EMP-100",
		Name:         "Sari Putri",
		Position:     "Analyst",
		Department:   "Finance",
		Password:     "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "employee", registered.Role)

	loggedIn, err := svc.Login(context.Background(), &dto.LoginRequest{
		EmployeeCode: "EMP-100",
		Password:     "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.Id, loggedIn.Id)
	assert.NotEmpty(t, loggedIn.Token)
}

func TestAuthRegisterStoresEmail(t *testing.T) {
	users, svc := newAuthFixture(t)

	registered, err := svc.Register(context.Background(), &dto.RegisterRequest{
		EmployeeCode: "EMP-100",
		Name:         "Sari",
		Password:     "s3cret-pass",
		Email:        "sari@example.com",
	})
	require.NoError(t, err)

	stored := users.users[registered.Id]
	require.NotNil(t, stored.Email)
	assert.Equal(t, "sari@example.com", *stored.Email)

	me, err := svc.Me(context.Background(), registered.Id)
	require.NoError(t, err)
	require.NotNil(t, me.Email)
	assert.Equal(t, "sari@example.com", *me.Email)

	// Email stays optional.
	plain, err := svc.Register(context.Background(), &dto.RegisterRequest{
		EmployeeCode: "EMP-101", Name: "Bima", Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Nil(t, users.users[plain.Id].Email)
}

func TestAuthRegisterDuplicate(t *testing.T) {
	_, svc := newAuthFixture(t)

	req := &dto.RegisterRequest{EmployeeCode: "EMP-100", Name: "Sari", Password: "s3cret-pass"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	var httpErr *serverutils.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, fiber.StatusConflict, httpErr.Code)
}

func TestAuthRegisterRejectsUnknownRole(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		EmployeeCode: "EMP-101",
		Name:         "Sari",
		Password:     "s3cret-pass",
		Role:         "superuser",
	})
	var httpErr *serverutils.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, fiber.StatusBadRequest, httpErr.Code)
}

func TestAuthLoginWrongPassword(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		EmployeeCode: "EMP-100", Name: "Sari", Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{EmployeeCode: "EMP-100", Password: "wrong"})
	var httpErr *serverutils.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, fiber.StatusUnauthorized, httpErr.Code)
}

func TestAuthLoginThrottleLocksOut(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		EmployeeCode: "EMP-100", Name: "Sari", Password: "s3cret-pass",
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{EmployeeCode: "EMP-100", Password: "wrong"})
		require.Error(t, err)
	}

	// Even the correct password is refused while locked out.
	_, err = svc.Login(context.Background(), &dto.LoginRequest{EmployeeCode: "EMP-100", Password: "s3cret-pass"})
	var httpErr *serverutils.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, fiber.StatusTooManyRequests, httpErr.Code)
}

func TestAuthMe(t *testing.T) {
	_, svc := newAuthFixture(t)

	registered, err := svc.Register(context.Background(), &dto.RegisterRequest{
		EmployeeCode: "EMP-100", Name: "Sari", Department: "Finance", Password: "s3cret-pass",
	})
	require.NoError(t, err)

	me, err := svc.Me(context.Background(), registered.Id)
	require.NoError(t, err)
	assert.Equal(t, "EMP-100", me.EmployeeCode)
	assert.Equal(t, "Finance", me.Department)

	_, err = svc.Me(context.Background(), uuid.New())
	var httpErr *serverutils.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, fiber.StatusNotFound, httpErr.Code)
}
