// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/angelamos/frontdesk/internal/audit"
	"github.com/angelamos/frontdesk/internal/config"
	"github.com/angelamos/frontdesk/internal/core"
	"github.com/angelamos/frontdesk/internal/store"
)

type fakeUserProvider struct {
	users []UserInfo
}

func (f *fakeUserProvider) GetByEmail(
	_ context.Context,
	email string,
) (*UserInfo, error) {
	for i := range f.users {
		if strings.EqualFold(f.users[i].Email, email) {
			return &f.users[i], nil
		}
	}
	return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
}

func (f *fakeUserProvider) GetByID(
	_ context.Context,
	id string,
) (*UserInfo, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	dir := t.TempDir()
	privPath := filepath.Join(dir, "private.pem")
	pubPath := filepath.Join(dir, "public.pem")
	require.NoError(t, GenerateKeyPair(privPath, pubPath))

	jwtManager, err := NewJWTManager(config.JWTConfig{
		PrivateKeyPath: privPath,
		PublicKeyPath:  pubPath,
		SessionExpire:  time.Hour,
		Issuer:         "frontdesk-test",
		Audience:       "frontdesk-test-api",
	})
	require.NoError(t, err)

	auditLog := audit.NewLogger(
		store.New(store.NewMemoryKV(), "test"),
		slog.Default(),
	)

	provider := &fakeUserProvider{users: []UserInfo{
		{
			ID:       "2",
			Email:    "teacher@clg.com",
			Name:     "Dr. Alice Smith",
			Password: "password",
			Role:     "teacher",
		},
	}}

	return NewService(jwtManager, provider, auditLog, nil)
}

func TestLoginSeededTeacher(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	resp, err := svc.Login(ctx, LoginRequest{
		Email:    "teacher@clg.com",
		Password: "password",
	})
	require.NoError(t, err)
	require.Equal(t, "teacher", resp.User.Role)
	require.Equal(t, "2", resp.User.ID)
	require.NotEmpty(t, resp.Token.Token)

	claims, err := svc.VerifySessionToken(ctx, resp.Token.Token)
	require.NoError(t, err)
	require.Equal(t, "2", claims.UserID)
	require.Equal(t, "teacher", claims.Role)
	require.Equal(t, "teacher@clg.com", claims.Email)
	require.NotEmpty(t, claims.TokenID)
}

func TestLoginEmailCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	resp, err := svc.Login(ctx, LoginRequest{
		Email:    "Teacher@CLG.com",
		Password: "password",
	})
	require.NoError(t, err)
	require.Equal(t, "teacher", resp.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Login(ctx, LoginRequest{
		Email:    "teacher@clg.com",
		Password: "wrong",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Login(ctx, LoginRequest{
		Email:    "nobody@clg.com",
		Password: "password",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.VerifySessionToken(ctx, "not-a-token")
	require.ErrorIs(t, err, core.ErrTokenInvalid)
}
