//go:build unit

package mailer

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	msg := delivery.CodeMessage("buyer@example.com", "WAEC-0001", "WASSCE")

	out, err := buildMessage("no-reply@example.com", msg)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = out.WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "multipart/alternative")
	assert.Contains(t, raw, "text/plain")
	assert.Contains(t, raw, "text/html")
	assert.Contains(t, raw, "<buyer@example.com>")
}

func TestBuildMessage_Invalid(t *testing.T) {
	tests := []struct {
		name string
		from string
		msg  delivery.Message
	}{
		{name: "no recipient", from: "no-reply@example.com", msg: delivery.Message{Subject: "s", Text: "t"}},
		{name: "bad recipient", from: "no-reply@example.com", msg: delivery.Message{To: "not-an-address", Subject: "s", Text: "t"}},
		{name: "bad sender", from: "nobody", msg: delivery.Message{To: "a@example.com", Subject: "s", Text: "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildMessage(tt.from, tt.msg)
			assert.Error(t, err)
		})
	}
}

func TestLogMailer_DoesNotLogBody(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	err := NewLogMailer(logger).Send(t.Context(), delivery.CodeMessage("buyer@example.com", "SECRET-CODE", "WASSCE"))

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "buyer@example.com")
	assert.NotContains(t, buf.String(), "SECRET-CODE")
}
