package usecase

import (
	"context"
	"strings"
	"time"

	"dropfit/internal/domain/entity"
	"dropfit/internal/domain/repository"
	"dropfit/internal/domain/service"
	"dropfit/pkg/errors"
	"dropfit/pkg/logger"
)

type NotifyUseCase struct {
	notifyRepo   repository.NotifyRepository
	emailService service.EmailService
}

func NewNotifyUseCase(notifyRepo repository.NotifyRepository, emailService service.EmailService) *NotifyUseCase {
	return &NotifyUseCase{
		notifyRepo:   notifyRepo,
		emailService: emailService,
	}
}

type JoinNotifyInput struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

// Join adds a subscriber to the drop notification list. The same email joining
// twice is treated as success, not an error. The welcome mail is best-effort.
func (uc *NotifyUseCase) Join(ctx context.Context, input JoinNotifyInput) (*entity.NotifyEntry, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, errors.BadRequest("Email is required", nil)
	}

	existing, err := uc.notifyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, entry := range existing {
		if strings.EqualFold(entry.Email, email) {
			return entry, nil
		}
	}

	entry := &entity.NotifyEntry{
		Email:     email,
		Name:      input.Name,
		CreatedAt: time.Now(),
	}

	if err := uc.notifyRepo.Add(ctx, entry); err != nil {
		return nil, err
	}

	if err := uc.emailService.SendWelcome(ctx, entry.Email, entry.Name); err != nil {
		logger.Warn("Failed to send welcome email to %s: %v", entry.Email, err)
	}

	return entry, nil
}

func (uc *NotifyUseCase) List(ctx context.Context) ([]*entity.NotifyEntry, error) {
	return uc.notifyRepo.List(ctx)
}
