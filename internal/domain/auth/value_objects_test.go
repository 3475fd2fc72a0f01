//go:build unit

package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid", username: "admin", password: "password123"},
		{name: "username is trimmed", username: "  admin ", password: "x"},
		{name: "empty username", username: "   ", password: "x", wantErr: ErrEmptyUsername},
		{name: "empty password", username: "admin", password: "", wantErr: ErrEmptyPassword},
		{name: "password over bcrypt limit", username: "admin", password: strings.Repeat("a", 73), wantErr: ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCredentials(tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "admin", c.Username())
			assert.Equal(t, tt.password, c.Password())
		})
	}
}
