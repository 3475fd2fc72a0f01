//go:build unit

package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		hash     string
		password string
		wantErr  error
	}{
		{name: "matching password", hash: hash, password: "s3cret"},
		{name: "wrong password", hash: hash, password: "nope", wantErr: ErrMismatch},
		{name: "empty password", hash: hash, password: "", wantErr: ErrInvalidPassword},
		{name: "empty hash", hash: "", password: "s3cret", wantErr: ErrInvalidHash},
		{name: "garbage hash", hash: "plaintext", password: "s3cret", wantErr: ErrInvalidHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ComparePassword(tt.hash, tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}
