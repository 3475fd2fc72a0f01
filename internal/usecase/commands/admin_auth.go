package commands

//go:generate mockgen -source=admin_auth.go -destination=../../../tests/mock/commands/admin_auth_mock.go -package=commandsmock

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/auth"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/clock"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/jwt"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/password"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
}

type AdminAuthCommands interface {
	Login(ctx context.Context, username, plain string) (*LoginResult, error)
	// Authenticate checks credentials without issuing a token (HTTP Basic).
	Authenticate(username, plain string) error
	// ValidateToken returns the operator name carried by the token.
	ValidateToken(token string) (string, error)
}

type adminAuthImpl struct {
	username     string
	passwordHash string
	jwtService   *jwt.Service
	clock        clock.Clock
	logger       *slog.Logger
}

func NewAdminAuthCommands(username, passwordHash string, jwtService *jwt.Service, clk clock.Clock, logger *slog.Logger) AdminAuthCommands {
	return &adminAuthImpl{
		username:     username,
		passwordHash: passwordHash,
		jwtService:   jwtService,
		clock:        clk,
		logger:       logger,
	}
}

func (a *adminAuthImpl) Login(ctx context.Context, username, plain string) (*LoginResult, error) {
	if err := a.Authenticate(username, plain); err != nil {
		a.logger.WarnContext(ctx, "admin login rejected", "username", username)
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(a.username)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	a.logger.InfoContext(ctx, "admin logged in", "username", a.username)
	return &LoginResult{
		AccessToken: token,
		ExpiresAt:   a.clock.Now().Add(a.jwtService.TokenDuration()),
	}, nil
}

func (a *adminAuthImpl) Authenticate(username, plain string) error {
	credentials, err := auth.NewCredentials(username, plain)
	if err != nil {
		return errs.Mark(err, ErrInvalidCredentials)
	}

	// Hash the password even for an unknown user so timing does not leak it.
	userOK := subtle.ConstantTimeCompare([]byte(credentials.Username()), []byte(a.username)) == 1
	if err := password.ComparePassword(a.passwordHash, credentials.Password()); err != nil || !userOK {
		return ErrInvalidCredentials
	}
	return nil
}

func (a *adminAuthImpl) ValidateToken(token string) (string, error) {
	claims, err := a.jwtService.ValidateToken(token)
	if err != nil {
		return "", errs.Mark(err, ErrTokenValidation)
	}
	if claims.Subject != a.username {
		return "", ErrTokenValidation
	}
	return claims.Subject, nil
}
