//go:build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_WebhookSigning(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		secret        string
		allowUnsigned bool
		wantErr       bool
	}{
		{name: "Normal case: secret set in production", env: EnvProduction, secret: "whsec_x"},
		{name: "Normal case: secret set in development", env: "development", secret: "whsec_x"},
		{name: "Normal case: explicit unsigned opt-in outside production", env: "development", allowUnsigned: true},
		{name: "Error case: missing secret with default environment", env: "development", wantErr: true},
		{name: "Error case: missing secret in production", env: EnvProduction, wantErr: true},
		{name: "Error case: unsigned opt-in in production", env: "Production", allowUnsigned: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewTestConfig()
			cfg.App.Env = tt.env
			cfg.Stripe.WebhookSecret = tt.secret
			cfg.Stripe.AllowUnsigned = tt.allowUnsigned

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_RejectsMissingWebhookSecret(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASSWORD", "p")
	t.Setenv("DB_NAME", "d")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("ADMIN_PASSWORD_HASH", "h")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "")
	t.Setenv("STRIPE_ALLOW_UNSIGNED", "false")

	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("STRIPE_ALLOW_UNSIGNED", "true")
	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.True(t, cfg.Stripe.AllowUnsigned)
	assert.Equal(t, "development", cfg.App.Env)
}
