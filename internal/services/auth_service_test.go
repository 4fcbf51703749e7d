package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witoldp/petcare-backend/internal/apperrors"
	"github.com/witoldp/petcare-backend/internal/dto"
	"github.com/witoldp/petcare-backend/internal/models"
)

var testJWTKey = []byte("0123456789abcdef0123456789abcdef")

func newAuthService(t *testing.T) (*AuthService, *testEnv) {
	env := newTestEnv(t)
	return NewAuthService(env.users, testJWTKey, time.Hour), env
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{
		FullName: "Alice Smith",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, []models.Role{models.RoleOwner}, resp.User.Roles)

	// The token carries the username as subject.
	token, err := jwt.Parse(resp.Token, func(*jwt.Token) (interface{}, error) {
		return testJWTKey, nil
	})
	require.NoError(t, err)
	sub, err := token.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "alice", sub)

	login, err := svc.Login(&dto.LoginRequest{Username: "alice", Password: "hunter2hunter2"})
	require.NoError(t, err)
	assert.Equal(t, "alice", login.User.Username)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAuthService(t)

	tests := []struct {
		name string
		req  dto.RegisterRequest
	}{
		{"empty full name", dto.RegisterRequest{Username: "bob", Email: "bob@example.com", Password: "password1"}},
		{"empty username", dto.RegisterRequest{FullName: "Bob", Email: "bob@example.com", Password: "password1"}},
		{"bad email", dto.RegisterRequest{FullName: "Bob", Username: "bob", Email: "not-an-email", Password: "password1"}},
		{"short password", dto.RegisterRequest{FullName: "Bob", Username: "bob", Email: "bob@example.com", Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(&tt.req)
			assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
		})
	}
}

func TestRegisterDuplicates(t *testing.T) {
	svc, _ := newAuthService(t)

	first := dto.RegisterRequest{
		FullName: "Alice", Username: "alice", Email: "alice@example.com", Password: "password1",
	}
	_, err := svc.Register(&first)
	require.NoError(t, err)

	dupUsername := first
	dupUsername.Email = "other@example.com"
	_, err = svc.Register(&dupUsername)
	assert.True(t, apperrors.IsKind(err, apperrors.KindDuplicate))

	dupEmail := first
	dupEmail.Username = "alice2"
	_, err = svc.Register(&dupEmail)
	assert.True(t, apperrors.IsKind(err, apperrors.KindDuplicate))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, env := newAuthService(t)
	createUser(t, env.db, "alice", models.RoleOwner)

	_, err := svc.Login(&dto.LoginRequest{Username: "alice", Password: "wrongpass"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotAuthenticated))

	_, err = svc.Login(&dto.LoginRequest{Username: "nobody", Password: "whatever"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotAuthenticated))
}
