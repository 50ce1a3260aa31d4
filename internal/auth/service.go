// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/angelamos/frontdesk/internal/audit"
	"github.com/angelamos/frontdesk/internal/core"
	"github.com/angelamos/frontdesk/internal/middleware"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// UserInfo is the cross-package view of a stored account. Password is the
// stored plaintext credential, matching the intentionally naive auth model.
type UserInfo struct {
	ID       string
	Email    string
	Name     string
	Password string
	Role     string
}

type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	GetByID(ctx context.Context, id string) (*UserInfo, error)
}

type Service struct {
	jwt          *JWTManager
	userProvider UserProvider
	auditLog     *audit.Logger
	redis        *redis.Client
}

func NewService(
	jwt *JWTManager,
	userProvider UserProvider,
	auditLog *audit.Logger,
	redisClient *redis.Client,
) *Service {
	return &Service{
		jwt:          jwt,
		userProvider: userProvider,
		auditLog:     auditLog,
		redis:        redisClient,
	}
}

// Login checks the submitted credentials against the stored account and
// signs a session token. Unknown email and wrong password produce the same
// error so callers cannot probe which accounts exist.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*LoginResponse, error) {
	email := strings.TrimSpace(req.Email)

	user, err := s.userProvider.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			s.auditLog.RecordAs(ctx, audit.ActorGuest, audit.ActorGuest,
				audit.ActionLoginFailed, map[string]any{"email": email})
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !core.ConstantTimeEquals(req.Password, user.Password) {
		s.auditLog.RecordAs(ctx, audit.ActorGuest, audit.ActorGuest,
			audit.ActionLoginFailed, map[string]any{"email": email})
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwt.CreateSessionToken(SessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Name:   user.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("create session token: %w", err)
	}

	s.auditLog.RecordAs(ctx, user.ID, user.Role,
		audit.ActionLoginSuccess, map[string]any{"email": user.Email})

	return &LoginResponse{
		User: UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
		Token: TokenResponse{
			Token:     token,
			TokenType: "Bearer",
			ExpiresIn: int(time.Until(expiresAt) / time.Second),
			ExpiresAt: expiresAt,
		},
	}, nil
}

// Logout blacklists the session's token id for the remainder of its
// lifetime. Without Redis there is nothing to revoke against and the token
// simply ages out.
func (s *Service) Logout(ctx context.Context, claims *middleware.SessionClaims) error {
	s.auditLog.Record(ctx, audit.ActionLogout, map[string]any{
		"email": claims.Email,
	})

	if s.redis == nil || claims.TokenID == "" {
		return nil
	}

	key := "blacklist:" + claims.TokenID
	if err := s.redis.Set(ctx, key, "1", s.jwt.config.SessionExpire).Err(); err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}

	return nil
}

// VerifySessionToken satisfies middleware.TokenVerifier. It validates the
// signature and standard claims, then rejects tokens revoked by logout.
func (s *Service) VerifySessionToken(
	ctx context.Context,
	tokenString string,
) (*middleware.SessionClaims, error) {
	claims, err := s.jwt.VerifySessionToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	if s.redis != nil && claims.TokenID != "" {
		exists, err := s.redis.Exists(ctx, "blacklist:"+claims.TokenID).Result()
		if err != nil {
			return nil, fmt.Errorf("check blacklist: %w", err)
		}
		if exists > 0 {
			return nil, fmt.Errorf("verify token: %w", core.ErrTokenRevoked)
		}
	}

	return claims, nil
}

func (s *Service) GetCurrentUser(
	ctx context.Context,
	userID string,
) (*UserResponse, error) {
	user, err := s.userProvider.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}
