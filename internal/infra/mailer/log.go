package mailer

import (
	"context"
	"log/slog"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/delivery"
)

// LogMailer stands in when no SMTP host is configured. Subject and body
// both carry the code, so only the recipient is logged.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, msg delivery.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	m.logger.Info("smtp not configured; email not sent",
		"to", msg.To)
	return nil
}
