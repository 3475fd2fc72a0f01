//go:build unit

package delivery_test

import (
	"testing"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/delivery"

	"github.com/stretchr/testify/assert"
)

func TestCodeMessage(t *testing.T) {
	msg := delivery.CodeMessage("buyer@example.com", "WAEC-1234<x>", "WASSCE & BECE")

	assert.Equal(t, "buyer@example.com", msg.To)
	assert.Equal(t, "Your WASSCE checker: WAEC-1234<x>", msg.Subject)
	assert.Contains(t, msg.Text, "Here is your checker code:\n\nWAEC-1234<x>\n\n")
	assert.Contains(t, msg.Text, "Product: WASSCE & BECE")
	assert.Contains(t, msg.HTML, "<pre>WAEC-1234&lt;x&gt;</pre>")
	assert.Contains(t, msg.HTML, "WASSCE &amp; BECE")
	assert.NoError(t, msg.Validate())
}

func TestMessageValidate(t *testing.T) {
	tests := []struct {
		name    string
		msg     delivery.Message
		wantErr error
	}{
		{name: "missing recipient", msg: delivery.Message{Subject: "s", Text: "t"}, wantErr: delivery.ErrMissingRecipient},
		{name: "blank recipient", msg: delivery.Message{To: "  ", Subject: "s", Text: "t"}, wantErr: delivery.ErrMissingRecipient},
		{name: "missing body", msg: delivery.Message{To: "a@b.c", Subject: "s"}, wantErr: delivery.ErrEmptyMessage},
		{name: "complete", msg: delivery.StockoutAlertMessage("ops@example.com", "cs_1", "WASSCE")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
