package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/identity"
	"corp-portal-be/internal/pkg/logger"
	"corp-portal-be/internal/repository/contract"
)

const chatStoreTimeout = 5 * time.Second

// IChatService implements the department chat core. Authorization is
// evaluated against the stored profile on every call, not the token claims,
// so a department transfer takes effect on the next event.
type IChatService interface {
	// Join authenticates the credential, checks the caller belongs to the
	// department, and returns the bound identity together with the recent
	// history in ascending chronological order.
	Join(ctx context.Context, token, department string) (*identity.Claims, []*entity.ChatMessage, error)

	// SaveMessage authorizes and persists one message. boundUserId is the
	// identity the session was joined with; a credential resolving to a
	// different user is rejected. The message is returned only after the
	// store accepted it.
	SaveMessage(ctx context.Context, token, department, text string, boundUserId uuid.UUID) (*entity.ChatMessage, error)
}

type ChatService struct {
	userRepository contract.UserRepository
	chatRepository contract.ChatMessageRepository
	verifier       *identity.Verifier
	log            logger.ILogger
	historyLimit   int
}

func NewChatService(
	userRepository contract.UserRepository,
	chatRepository contract.ChatMessageRepository,
	verifier *identity.Verifier,
	log logger.ILogger,
	historyLimit int,
) IChatService {
	return &ChatService{
		userRepository: userRepository,
		chatRepository: chatRepository,
		verifier:       verifier,
		log:            log,
		historyLimit:   historyLimit,
	}
}

// authorize resolves the credential to a stored profile and checks its
// department against the requested room.
func (s *ChatService) authorize(ctx context.Context, token, department string) (*identity.Claims, *entity.User, error) {
	claims, err := s.verifier.Verify(token)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.userRepository.FindById(ctx, claims.UserId)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if user == nil {
		return nil, nil, identity.ErrInvalidCredential
	}
	if user.Department != department {
		return nil, nil, ErrDepartmentMismatch
	}
	return claims, user, nil
}

func (s *ChatService) Join(ctx context.Context, token, department string) (*identity.Claims, []*entity.ChatMessage, error) {
	if strings.TrimSpace(token) == "" || strings.TrimSpace(department) == "" {
		return nil, nil, ErrMalformedRequest
	}

	ctx, cancel := context.WithTimeout(ctx, chatStoreTimeout)
	defer cancel()

	claims, _, err := s.authorize(ctx, token, department)
	if err != nil {
		return nil, nil, err
	}

	history, err := s.chatRepository.RecentHistory(ctx, department, s.historyLimit)
	if err != nil {
		s.log.Error("chat", "failed to load room history", map[string]interface{}{
			"department": department,
			"error":      err.Error(),
		})
		return nil, nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.log.Info("chat", "user joined department room", map[string]interface{}{
		"user_id":    claims.UserId.String(),
		"department": department,
	})
	return claims, history, nil
}

func (s *ChatService) SaveMessage(ctx context.Context, token, department, text string, boundUserId uuid.UUID) (*entity.ChatMessage, error) {
	if strings.TrimSpace(text) == "" || strings.TrimSpace(department) == "" {
		return nil, ErrMalformedRequest
	}

	ctx, cancel := context.WithTimeout(ctx, chatStoreTimeout)
	defer cancel()

	claims, user, err := s.authorize(ctx, token, department)
	if err != nil {
		return nil, err
	}
	if claims.UserId != boundUserId {
		return nil, identity.ErrInvalidCredential
	}

	message := &entity.ChatMessage{
		Id:         uuid.New(),
		Department: department,
		SenderId:   user.EmployeeCode,
		SenderName: user.Name,
		Text:       text,
		CreatedAt:  time.Now(),
	}
	if err := s.chatRepository.Create(ctx, message); err != nil {
		s.log.Error("chat", "failed to persist message", map[string]interface{}{
			"sender_id":  user.EmployeeCode,
			"department": department,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return message, nil
}
