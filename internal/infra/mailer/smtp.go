package mailer

import (
	"context"
	"log/slog"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/delivery"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"

	"github.com/wneessen/go-mail"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	Timeout  time.Duration
}

// SMTPMailer sends each message as multipart/alternative over one dial.
type SMTPMailer struct {
	client *mail.Client
	from   string
	logger *slog.Logger
}

func NewSMTPMailer(cfg SMTPConfig, logger *slog.Logger) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "create smtp client")
	}
	return &SMTPMailer{client: client, from: cfg.From, logger: logger}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg delivery.Message) error {
	out, err := buildMessage(m.from, msg)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		return errs.Wrap(err, "smtp send")
	}
	m.logger.Debug("email sent", "to", msg.To)
	return nil
}

func buildMessage(from string, msg delivery.Message) (*mail.Msg, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	out := mail.NewMsg()
	if err := out.From(from); err != nil {
		return nil, errs.Wrap(err, "invalid sender address")
	}
	if err := out.To(msg.To); err != nil {
		return nil, errs.Wrap(err, "invalid recipient address")
	}
	out.Subject(msg.Subject)
	out.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		out.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}
	return out, nil
}
