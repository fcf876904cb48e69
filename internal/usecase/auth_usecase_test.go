package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"dropfit/internal/domain/entity"
	"dropfit/pkg/errors"
)

type fakeFirebaseAuth struct {
	created  int
	signInOK bool
}

func (f *fakeFirebaseAuth) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	f.created++
	return "uid-1", nil
}

func (f *fakeFirebaseAuth) VerifyToken(ctx context.Context, token string) (string, error) {
	if token != "token-1" {
		return "", assert.AnError
	}
	return "uid-1", nil
}

func (f *fakeFirebaseAuth) SignInWithEmailPassword(ctx context.Context, email, password string) (string, error) {
	if !f.signInOK {
		return "", assert.AnError
	}
	return "token-1", nil
}

func (f *fakeFirebaseAuth) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	return nil
}

func TestRegisterCreatesAuthUserAndProfile(t *testing.T) {
	userRepo := &fakeUserRepo{users: make(map[string]*entity.User)}
	firebaseAuth := &fakeFirebaseAuth{signInOK: true}
	uc := NewAuthUseCase(userRepo, firebaseAuth)

	result, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Rafi",
		Email:    "rafi@example.com",
		Password: "supersecret",
		Phone:    "01700000000",
		City:     "Dhaka",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, firebaseAuth.created)
	assert.Equal(t, "uid-1", result.User.ID)
	assert.Equal(t, entity.RoleUser, result.User.Role)
	assert.Equal(t, "Dhaka", result.User.City)
	assert.Equal(t, "token-1", result.Token)
	assert.Contains(t, userRepo.users, "uid-1")
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	userRepo := &fakeUserRepo{users: map[string]*entity.User{
		"existing": {ID: "existing", Email: "rafi@example.com"},
	}}
	uc := NewAuthUseCase(userRepo, &fakeFirebaseAuth{signInOK: true})

	_, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Rafi",
		Email:    "rafi@example.com",
		Password: "supersecret",
		Phone:    "01700000000",
	})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestLoginWithBadCredentials(t *testing.T) {
	userRepo := &fakeUserRepo{users: make(map[string]*entity.User)}
	uc := NewAuthUseCase(userRepo, &fakeFirebaseAuth{signInOK: false})

	_, err := uc.Login(context.Background(), "rafi@example.com", "wrong")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLoginReturnsProfileAndToken(t *testing.T) {
	userRepo := &fakeUserRepo{users: map[string]*entity.User{
		"uid-1": {ID: "uid-1", Name: "Rafi", Email: "rafi@example.com", Role: entity.RoleUser},
	}}
	uc := NewAuthUseCase(userRepo, &fakeFirebaseAuth{signInOK: true})

	result, err := uc.Login(context.Background(), "rafi@example.com", "supersecret")

	assert.NoError(t, err)
	assert.Equal(t, "token-1", result.Token)
	assert.Equal(t, "Rafi", result.User.Name)
}
