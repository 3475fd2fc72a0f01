//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/clock"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/jwt"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/password"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"

	"github.com/stretchr/testify/suite"
)

type AdminAuthTestSuite struct {
	suite.Suite
	jwtService *jwt.Service
	auth       commands.AdminAuthCommands
}

func (s *AdminAuthTestSuite) SetupSuite() {
	hash, err := password.HashPassword("password123")
	s.Require().NoError(err)

	s.jwtService = jwt.NewService("test-secret", time.Hour)
	s.auth = commands.NewAdminAuthCommands("admin", hash, s.jwtService, clock.NewMockClock(testNow), discardLogger())
}

func TestAdminAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AdminAuthTestSuite))
}

func (s *AdminAuthTestSuite) TestLogin() {
	res, err := s.auth.Login(context.Background(), "admin", "password123")

	s.Require().NoError(err)
	s.NotEmpty(res.AccessToken)
	s.Equal(testNow.Add(time.Hour), res.ExpiresAt)

	subject, err := s.auth.ValidateToken(res.AccessToken)
	s.Require().NoError(err)
	s.Equal("admin", subject)
}

func (s *AdminAuthTestSuite) TestAuthenticate_Rejects() {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "password124"},
		{name: "wrong user", username: "root", password: "password123"},
		{name: "empty password", username: "admin", password: ""},
		{name: "empty user", username: " ", password: "password123"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.True(errs.Is(s.auth.Authenticate(tt.username, tt.password), commands.ErrInvalidCredentials))
		})
	}
}

func (s *AdminAuthTestSuite) TestValidateToken_ForeignSubject() {
	token, err := s.jwtService.GenerateToken("someone-else")
	s.Require().NoError(err)

	_, err = s.auth.ValidateToken(token)

	s.True(errs.Is(err, commands.ErrTokenValidation))
}

func (s *AdminAuthTestSuite) TestValidateToken_Garbage() {
	_, err := s.auth.ValidateToken("not.a.token")
	s.True(errs.Is(err, commands.ErrTokenValidation))
}
