package firebase

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
	"github.com/go-resty/resty/v2"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

type FirebaseAuthClient struct {
	client *auth.Client
	apiKey string
	http   *resty.Client
}

func NewFirebaseAuthClient(client *auth.Client, apiKey string) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
		apiKey: apiKey,
		http:   resty.New(),
	}
}

func (f *FirebaseAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}

	return user.UID, nil
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

type signInResponse struct {
	IDToken string `json:"idToken"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithEmailPassword exchanges credentials for an ID token via the
// Identity Toolkit REST endpoint. The Admin SDK cannot do password sign-in.
func (f *FirebaseAuthClient) SignInWithEmailPassword(ctx context.Context, email, password string) (string, error) {
	var result signInResponse

	resp, err := f.http.R().
		SetContext(ctx).
		SetQueryParam("key", f.apiKey).
		SetBody(map[string]interface{}{
			"email":             email,
			"password":          password,
			"returnSecureToken": true,
		}).
		SetResult(&result).
		SetError(&result).
		Post(signInEndpoint)
	if err != nil {
		return "", err
	}

	if resp.IsError() {
		message := "sign-in failed"
		if result.Error != nil {
			message = result.Error.Message
		}
		return "", fmt.Errorf("identity toolkit: %s", message)
	}

	return result.IDToken, nil
}

func (f *FirebaseAuthClient) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	params := (&auth.UserToUpdate{}).
		Password(newPassword)

	_, err := f.client.UpdateUser(ctx, uid, params)
	return err
}
