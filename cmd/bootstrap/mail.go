package bootstrap

import (
	"log/slog"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/mailer"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/config"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		NewMailer,
	),
)

// NewMailer falls back to logging recipients when no SMTP host is set, so
// local runs never need a mail server.
func NewMailer(cfg config.Config, logger *slog.Logger) (commands.Mailer, error) {
	if cfg.SMTP.Host == "" {
		logger.Warn("SMTP_HOST is empty, codes will not be emailed")
		return mailer.NewLogMailer(logger), nil
	}
	m, err := mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		Timeout:  cfg.SMTP.Timeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	return m, nil
}
