package service

import (
	"context"
	"time"

	"github.com/stayvia/stayvia-server/internal/adapters/logger"
	"github.com/stayvia/stayvia-server/internal/domain/dto"
	"github.com/stayvia/stayvia-server/internal/domain/entity"
)

type VerificationStorage interface {
	Create(ctx context.Context, event *entity.VerificationEvent) (*entity.VerificationEvent, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.VerificationEvent, error)
}

type verificationUserStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
}

type verificationSMTPClient interface {
	SendVerificationResult(to string, subject string, body string)
}

type verificationQueryCache interface {
	Invalidate(ctx context.Context, name string) error
}

// VerificationService serves a landlord's rejection history and carries the
// review decisions that produce it.
type VerificationService struct {
	logger *logger.Logger

	storage     VerificationStorage
	userStorage verificationUserStorage
	smtpClient  verificationSMTPClient
	cache       verificationQueryCache
}

func NewVerificationService(
	logger *logger.Logger,
	storage VerificationStorage,
	userStorage verificationUserStorage,
	smtpClient verificationSMTPClient,
	cache verificationQueryCache,
) *VerificationService {
	return &VerificationService{
		logger: logger,

		storage:     storage,
		userStorage: userStorage,
		smtpClient:  smtpClient,
		cache:       cache,
	}
}

// History lists a user's rejection messages, newest first. No history is an
// empty slice, not an error.
func (s *VerificationService) History(ctx context.Context, userID string) ([]dto.VerificationMessage, error) {
	events, err := s.storage.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	messages := make([]dto.VerificationMessage, 0, len(events))
	for _, event := range events {
		messages = append(messages, dto.NewVerificationMessageFromEntity(event))
	}
	return messages, nil
}

// Approve marks a landlord account as verified and notifies the user.
func (s *VerificationService) Approve(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.userStorage.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user.AccountType = entity.AccountTypeLandlord
	user.VerifiedAt = &now

	updated, err := s.userStorage.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.smtpClient.SendVerificationResult(user.Email, "Account verification approved",
		"The administrator has reviewed and approved your landlord account.")
	s.invalidate(ctx, QueryCurrentUser, QueryVerificationMessages)
	return updated, nil
}

// Reject records a rejection event for the user's current proof submission
// and notifies the user. The account stays unverified.
func (s *VerificationService) Reject(ctx context.Context, userID string, rejectMsg string) (*entity.VerificationEvent, error) {
	user, err := s.userStorage.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	event, err := s.storage.Create(ctx, &entity.VerificationEvent{
		UserID:    userID,
		RejectMsg: rejectMsg,
	})
	if err != nil {
		return nil, err
	}

	user.AccountType = entity.AccountTypeLandlordUnverified
	if _, err = s.userStorage.Update(ctx, user); err != nil {
		return nil, err
	}

	s.smtpClient.SendVerificationResult(user.Email, "Account verification update", rejectMsg)
	s.invalidate(ctx, QueryCurrentUser, QueryVerificationMessages)
	return event, nil
}

func (s *VerificationService) invalidate(ctx context.Context, names ...string) {
	for _, name := range names {
		if err := s.cache.Invalidate(ctx, name); err != nil {
			s.logger.Warnf("failed to invalidate %s: %v", name, err)
		}
	}
}
