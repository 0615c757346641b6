package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/identity"
	"corp-portal-be/internal/repository/specification"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type fakeUserRepository struct {
	users map[uuid.UUID]*entity.User
	err   error
}

func (r *fakeUserRepository) Create(_ context.Context, user *entity.User) error {
	r.users[user.Id] = user
	return nil
}

func (r *fakeUserRepository) Update(_ context.Context, user *entity.User) error {
	r.users[user.Id] = user
	return nil
}

func (r *fakeUserRepository) FindById(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.users[id], nil
}

func (r *fakeUserRepository) FindOne(_ context.Context, _ ...specification.Specification) (*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepository) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeChatRepository struct {
	messages  []*entity.ChatMessage
	createErr error
	queryErr  error
}

func (r *fakeChatRepository) Create(_ context.Context, msg *entity.ChatMessage) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.messages = append(r.messages, msg)
	return nil
}

func (r *fakeChatRepository) RecentHistory(_ context.Context, department string, limit int) ([]*entity.ChatMessage, error) {
	if r.queryErr != nil {
		return nil, r.queryErr
	}
	var matched []*entity.ChatMessage
	for _, msg := range r.messages {
		if msg.Department == department {
			matched = append(matched, msg)
		}
	}
	if len(matched) > limit {
		matched = matched[len(matched)-limit:]
	}
	return matched, nil
}

func chatFixture(t *testing.T) (*fakeUserRepository, *fakeChatRepository, *identity.Verifier, *entity.User, string) {
	t.Helper()

	user := &entity.User{
		Id:           uuid.New(),
		EmployeeCode: "EMP-001",
		Name:         "Dina Rahma",
		Department:   "Engineering",
		Role:         entity.UserRoleEmployee,
	}
	users := &fakeUserRepository{users: map[uuid.UUID]*entity.User{user.Id: user}}
	chats := &fakeChatRepository{}

	verifier := identity.NewVerifier("test-secret", time.Hour)
	token, err := verifier.Issue(user.Id, user.EmployeeCode, user.Name, string(user.Role))
	require.NoError(t, err)

	return users, chats, verifier, user, token
}

func TestChatServiceJoin(t *testing.T) {
	users, chats, verifier, user, token := chatFixture(t)
	for i := 0; i < 3; i++ {
		chats.messages = append(chats.messages, &entity.ChatMessage{
			Id:         uuid.New(),
			Department: "Engineering",
			SenderId:   user.EmployeeCode,
			Text:       "hello",
			CreatedAt:  time.Now().Add(time.Duration(i) * time.Second),
		})
	}
	svc := NewChatService(users, chats, verifier, nopLogger{}, 50)

	claims, history, err := svc.Join(context.Background(), token, "Engineering")
	require.NoError(t, err)
	assert.Equal(t, user.Id, claims.UserId)
	assert.Len(t, history, 3)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].CreatedAt.Before(history[i-1].CreatedAt))
	}
}

func TestChatServiceJoinRejections(t *testing.T) {
	users, chats, verifier, _, token := chatFixture(t)
	svc := NewChatService(users, chats, verifier, nopLogger{}, 50)

	testCases := []struct {
		name       string
		token      string
		department string
		wantErr    error
	}{
		{"wrong department", token, "Finance", ErrDepartmentMismatch},
		{"garbage token", "not-a-token", "Engineering", identity.ErrInvalidCredential},
		{"empty token", "", "Engineering", ErrMalformedRequest},
		{"empty department", token, "", ErrMalformedRequest},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Join(context.Background(), tc.token, tc.department)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestChatServiceJoinUnknownUser(t *testing.T) {
	users, chats, verifier, _, _ := chatFixture(t)
	svc := NewChatService(users, chats, verifier, nopLogger{}, 50)

	// Valid signature but the subject no longer exists in the store.
	strayToken, err := verifier.Issue(uuid.New(), "EMP-999", "Ghost", "employee")
	require.NoError(t, err)

	_, _, joinErr := svc.Join(context.Background(), strayToken, "Engineering")
	assert.ErrorIs(t, joinErr, identity.ErrInvalidCredential)
}

func TestChatServiceSaveMessage(t *testing.T) {
	users, chats, verifier, user, token := chatFixture(t)
	svc := NewChatService(users, chats, verifier, nopLogger{}, 50)

	msg, err := svc.SaveMessage(context.Background(), token, "Engineering", "standup at ten", user.Id)
	require.NoError(t, err)
	assert.Equal(t, user.EmployeeCode, msg.SenderId)
	assert.Equal(t, user.Name, msg.SenderName)
	assert.Equal(t, "standup at ten", msg.Text)
	require.Len(t, chats.messages, 1)
}

func TestChatServiceSaveMessageRejections(t *testing.T) {
	users, chats, verifier, user, token := chatFixture(t)
	svc := NewChatService(users, chats, verifier, nopLogger{}, 50)

	otherId := uuid.New()
	users.users[otherId] = &entity.User{
		Id: otherId, EmployeeCode: "EMP-002", Name: "Bima", Department: "Engineering", Role: entity.UserRoleEmployee,
	}
	otherToken, err := verifier.Issue(otherId, "EMP-002", "Bima", "employee")
	require.NoError(t, err)

	testCases := []struct {
		name       string
		token      string
		department string
		text       string
		boundId    uuid.UUID
		wantErr    error
	}{
		{"empty text", token, "Engineering", "   ", user.Id, ErrMalformedRequest},
		{"wrong department", token, "Finance", "hi", user.Id, ErrDepartmentMismatch},
		{"identity swap mid-session", otherToken, "Engineering", "hi", user.Id, identity.ErrInvalidCredential},
		{"bad token", "bogus", "Engineering", "hi", user.Id, identity.ErrInvalidCredential},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SaveMessage(context.Background(), tc.token, tc.department, tc.text, tc.boundId)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
	assert.Empty(t, chats.messages)
}

func TestChatServiceReauthorizesEachSend(t *testing.T) {
	users, chats, verifier, user, token := chatFixture(t)
	svc := NewChatService(users, chats, verifier, nopLogger{}, 50)

	_, err := svc.SaveMessage(context.Background(), token, "Engineering", "first", user.Id)
	require.NoError(t, err)

	// The user transfers out of the department after joining.
	user.Department = "Finance"

	_, err = svc.SaveMessage(context.Background(), token, "Engineering", "second", user.Id)
	assert.ErrorIs(t, err, ErrDepartmentMismatch)
	assert.Len(t, chats.messages, 1)
}

func TestChatServiceStoreFailureBlocksMessage(t *testing.T) {
	users, chats, verifier, user, token := chatFixture(t)
	chats.createErr = errors.New("connection reset")
	svc := NewChatService(users, chats, verifier, nopLogger{}, 50)

	msg, err := svc.SaveMessage(context.Background(), token, "Engineering", "lost", user.Id)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Nil(t, msg)
	assert.Empty(t, chats.messages)
}

func TestChatServiceHistoryLimit(t *testing.T) {
	users, chats, verifier, user, token := chatFixture(t)
	for i := 0; i < 10; i++ {
		chats.messages = append(chats.messages, &entity.ChatMessage{
			Id:         uuid.New(),
			Department: "Engineering",
			SenderId:   user.EmployeeCode,
			Text:       "msg",
			CreatedAt:  time.Now().Add(time.Duration(i) * time.Second),
		})
	}
	svc := NewChatService(users, chats, verifier, nopLogger{}, 4)

	_, history, err := svc.Join(context.Background(), token, "Engineering")
	require.NoError(t, err)
	assert.Len(t, history, 4)
}
