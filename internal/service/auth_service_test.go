package service

import (
	"testing"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db))
}

func TestRegister_UniqueEmailAndUsername(t *testing.T) {
	authService := newAuthService(t)

	req := &dto.RegisterRequest{
		Email:     "chef@example.com",
		Username:  "chef",
		FirstName: "大",
		LastName:  "厨",
		Password:  "secret-password",
	}

	info, err := authService.Register(req)
	require.NoError(t, err)
	assert.Equal(t, "chef@example.com", info.Email)
	assert.Equal(t, "chef", info.Username)
	assert.False(t, info.IsSubscribed)

	dup := *req
	dup.Username = "chef2"
	_, err = authService.Register(&dup)
	assert.ErrorIs(t, err, ErrEmailExists)

	dup = *req
	dup.Email = "chef2@example.com"
	_, err = authService.Register(&dup)
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestLogin(t *testing.T) {
	authService := newAuthService(t)

	_, err := authService.Register(&dto.RegisterRequest{
		Email:     "chef@example.com",
		Username:  "chef",
		FirstName: "大",
		LastName:  "厨",
		Password:  "secret-password",
	})
	require.NoError(t, err)

	data, err := authService.Login(&dto.LoginRequest{
		Email:    "chef@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, data.Token)
	assert.Equal(t, "bearer", data.TokenType)
	assert.Equal(t, "chef", data.User.Username)

	_, err = authService.Login(&dto.LoginRequest{
		Email:    "chef@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = authService.Login(&dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}
