package usecase

import (
	"context"
	"time"

	"dropfit/internal/domain/entity"
	"dropfit/internal/domain/repository"
	"dropfit/internal/domain/service"
	"dropfit/pkg/errors"
	"dropfit/pkg/logger"
)

type DropUseCase struct {
	dropRepo     repository.DropRepository
	notifyRepo   repository.NotifyRepository
	emailService service.EmailService
}

func NewDropUseCase(
	dropRepo repository.DropRepository,
	notifyRepo repository.NotifyRepository,
	emailService service.EmailService,
) *DropUseCase {
	return &DropUseCase{
		dropRepo:     dropRepo,
		notifyRepo:   notifyRepo,
		emailService: emailService,
	}
}

type CreateDropInput struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	LaunchDate  time.Time `json:"launch_date" validate:"required"`
	ImageURL    string    `json:"image_url"`
	Status      string    `json:"status" validate:"required"`
}

func (uc *DropUseCase) CreateDrop(ctx context.Context, input CreateDropInput) (*entity.Drop, error) {
	status := entity.DropStatus(input.Status)
	if !status.Valid() {
		return nil, errors.BadRequest("Invalid drop status", nil)
	}

	now := time.Now()
	drop := &entity.Drop{
		Name:        input.Name,
		Description: input.Description,
		LaunchDate:  input.LaunchDate,
		ImageURL:    input.ImageURL,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.dropRepo.Create(ctx, drop); err != nil {
		return nil, err
	}

	return drop, nil
}

func (uc *DropUseCase) UpdateDrop(ctx context.Context, id string, input CreateDropInput) (*entity.Drop, error) {
	drop, err := uc.dropRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	status := entity.DropStatus(input.Status)
	if !status.Valid() {
		return nil, errors.BadRequest("Invalid drop status", nil)
	}

	drop.Name = input.Name
	drop.Description = input.Description
	drop.LaunchDate = input.LaunchDate
	drop.ImageURL = input.ImageURL
	drop.Status = status
	drop.UpdatedAt = time.Now()

	if err := uc.dropRepo.Update(ctx, drop); err != nil {
		return nil, err
	}

	return drop, nil
}

func (uc *DropUseCase) GetDrop(ctx context.Context, id string) (*entity.Drop, error) {
	return uc.dropRepo.GetByID(ctx, id)
}

func (uc *DropUseCase) ListDrops(ctx context.Context, status string, limit int) ([]*entity.Drop, error) {
	dropStatus := entity.DropStatus(status)
	if status != "" && !dropStatus.Valid() {
		return nil, errors.BadRequest("Invalid drop status filter", nil)
	}
	return uc.dropRepo.List(ctx, dropStatus, limit)
}

// NextDrop returns the upcoming drop with the earliest launch date, for the
// storefront countdown. Nil when nothing is scheduled.
func (uc *DropUseCase) NextDrop(ctx context.Context) (*entity.Drop, error) {
	drops, err := uc.dropRepo.List(ctx, entity.DropStatusUpcoming, 1)
	if err != nil {
		return nil, err
	}
	if len(drops) == 0 {
		return nil, nil
	}
	return drops[0], nil
}

// Announce emails everyone on the notify list about a drop. Failures are
// logged, not returned, so a flaky mail provider can't block the launch.
func (uc *DropUseCase) Announce(ctx context.Context, dropID string) (int, error) {
	drop, err := uc.dropRepo.GetByID(ctx, dropID)
	if err != nil {
		return 0, err
	}

	recipients, err := uc.notifyRepo.ListEmails(ctx)
	if err != nil {
		return 0, err
	}

	if len(recipients) == 0 {
		return 0, nil
	}

	if err := uc.emailService.SendDropAnnouncement(ctx, recipients, drop); err != nil {
		logger.Error("Failed to send drop announcement for %s: %v", drop.ID, err)
	}

	return len(recipients), nil
}
