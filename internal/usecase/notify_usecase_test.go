package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"dropfit/internal/domain/entity"
	"dropfit/pkg/errors"
)

type fakeNotifyRepo struct {
	entries []*entity.NotifyEntry
}

func (r *fakeNotifyRepo) Add(ctx context.Context, entry *entity.NotifyEntry) error {
	if entry.ID == "" {
		entry.ID = "n1"
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeNotifyRepo) List(ctx context.Context) ([]*entity.NotifyEntry, error) {
	return r.entries, nil
}

func (r *fakeNotifyRepo) ListEmails(ctx context.Context) ([]string, error) {
	emails := make([]string, 0, len(r.entries))
	for _, entry := range r.entries {
		emails = append(emails, entry.Email)
	}
	return emails, nil
}

func TestJoinAddsEntryAndSendsWelcome(t *testing.T) {
	repo := &fakeNotifyRepo{}
	emailService := &fakeEmailService{}
	uc := NewNotifyUseCase(repo, emailService)

	entry, err := uc.Join(context.Background(), JoinNotifyInput{Email: "Fan@Example.com", Name: "Fan"})

	assert.NoError(t, err)
	assert.Equal(t, "fan@example.com", entry.Email, "emails are stored lowercased")
	assert.Len(t, repo.entries, 1)
	assert.Equal(t, []string{"fan@example.com"}, emailService.welcomes)
}

func TestJoinIsIdempotentPerEmail(t *testing.T) {
	repo := &fakeNotifyRepo{}
	emailService := &fakeEmailService{}
	uc := NewNotifyUseCase(repo, emailService)

	first, err := uc.Join(context.Background(), JoinNotifyInput{Email: "fan@example.com"})
	assert.NoError(t, err)

	second, err := uc.Join(context.Background(), JoinNotifyInput{Email: "FAN@example.com"})
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.entries, 1)
	assert.Len(t, emailService.welcomes, 1, "no second welcome mail for a repeat signup")
}

func TestJoinRejectsEmptyEmail(t *testing.T) {
	uc := NewNotifyUseCase(&fakeNotifyRepo{}, &fakeEmailService{})

	_, err := uc.Join(context.Background(), JoinNotifyInput{Email: "   "})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestJoinSurvivesWelcomeEmailFailure(t *testing.T) {
	repo := &fakeNotifyRepo{}
	emailService := &fakeEmailService{err: assert.AnError}
	uc := NewNotifyUseCase(repo, emailService)

	entry, err := uc.Join(context.Background(), JoinNotifyInput{Email: "fan@example.com"})

	assert.NoError(t, err)
	assert.NotNil(t, entry)
	assert.Len(t, repo.entries, 1)
}
