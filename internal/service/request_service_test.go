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
	"corp-portal-be/internal/repository/specification"
)

type fakeRequestRepository struct {
	requests map[uuid.UUID]*entity.Request
}

func (r *fakeRequestRepository) Create(_ context.Context, req *entity.Request) error {
	r.requests[req.Id] = req
	return nil
}

func (r *fakeRequestRepository) Update(_ context.Context, req *entity.Request) error {
	r.requests[req.Id] = req
	return nil
}

func (r *fakeRequestRepository) FindById(_ context.Context, id uuid.UUID) (*entity.Request, error) {
	return r.requests[id], nil
}

func (r *fakeRequestRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Request, error) {
	var owner, status string
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByRequestOwner:
			owner = s.EmployeeCode
		case specification.ByStatus:
			status = s.Status
		}
	}
	var out []*entity.Request
	for _, req := range r.requests {
		if owner != "" && req.EmployeeCode != owner {
			continue
		}
		if status != "" && string(req.Status) != status {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

type fakeEmailService struct {
	sent []string
}

func (s *fakeEmailService) SendRequestStatusUpdate(toEmail, _, _, status string) error {
	s.sent = append(s.sent, toEmail+":"+status)
	return nil
}

func newRequestFixture() (*fakeRequestRepository, *findOneUserRepository, *fakeEmailService, IRequestService) {
	requests := &fakeRequestRepository{requests: map[uuid.UUID]*entity.Request{}}
	users := &findOneUserRepository{fakeUserRepository{users: map[uuid.UUID]*entity.User{}}}
	emails := &fakeEmailService{}
	svc := NewRequestService(requests, users, emails, nil, nopLogger{})
	return requests, users, emails, svc
}

func TestRequestCreateAndListMine(t *testing.T) {
	_, _, _, svc := newRequestFixture()

	created, err := svc.Create(context.Background(), &dto.CreateRequestRequest{
		Type:    "leave",
		Details: "two days off",
	}, "EMP-100", "Sari")
	require.NoError(t, err)
	assert.Equal(t, "pending", created.Status)

	mine, err := svc.ListMine(context.Background(), "EMP-100")
	require.NoError(t, err)
	require.Len(t, mine, 1)

	other, err := svc.ListMine(context.Background(), "EMP-999")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRequestStatusChangeNotifiesOwner(t *testing.T) {
	_, users, emails, svc := newRequestFixture()

	email := "sari@example.com"
	ownerId := uuid.New()
	users.users[ownerId] = &entity.User{
		Id: ownerId, EmployeeCode: "EMP-100", Name: "Sari", Email: &email, Role: entity.UserRoleEmployee,
	}

	created, err := svc.Create(context.Background(), &dto.CreateRequestRequest{Type: "leave"}, "EMP-100", "Sari")
	require.NoError(t, err)

	approved := "approved"
	updated, err := svc.UpdateStatus(context.Background(), created.Id, &dto.UpdateRequestStatusRequest{Status: &approved})
	require.NoError(t, err)
	assert.Equal(t, "approved", updated.Status)
	require.Len(t, emails.sent, 1)
	assert.Equal(t, "sari@example.com:approved", emails.sent[0])

	// Setting the same status again is not a change and sends nothing.
	_, err = svc.UpdateStatus(context.Background(), created.Id, &dto.UpdateRequestStatusRequest{Status: &approved})
	require.NoError(t, err)
	assert.Len(t, emails.sent, 1)
}

func TestRequestNotificationUsesRegisteredEmail(t *testing.T) {
	users, authSvc := newAuthFixture(t)

	_, err := authSvc.Register(context.Background(), &dto.RegisterRequest{
		EmployeeCode: "EMP-100",
		Name:         "Sari",
		Password:     "s3cret-pass",
		Email:        "sari@example.com",
	})
	require.NoError(t, err)

	requests := &fakeRequestRepository{requests: map[uuid.UUID]*entity.Request{}}
	emails := &fakeEmailService{}
	svc := NewRequestService(requests, users, emails, nil, nopLogger{})

	created, err := svc.Create(context.Background(), &dto.CreateRequestRequest{Type: "leave"}, "EMP-100", "Sari")
	require.NoError(t, err)

	approved := "approved"
	_, err = svc.UpdateStatus(context.Background(), created.Id, &dto.UpdateRequestStatusRequest{Status: &approved})
	require.NoError(t, err)
	require.Len(t, emails.sent, 1)
	assert.Equal(t, "sari@example.com:approved", emails.sent[0])
}

func TestRequestStatusRejectsUnknownValue(t *testing.T) {
	_, _, _, svc := newRequestFixture()

	created, err := svc.Create(context.Background(), &dto.CreateRequestRequest{Type: "leave"}, "EMP-100", "Sari")
	require.NoError(t, err)

	bogus := "escalated"
	_, err = svc.UpdateStatus(context.Background(), created.Id, &dto.UpdateRequestStatusRequest{Status: &bogus})
	var httpErr *serverutils.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, fiber.StatusBadRequest, httpErr.Code)
}
