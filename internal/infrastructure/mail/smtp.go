// Package mail delivers notifications over SMTP.
package mail

import (
	"context"
	"errors"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"content-site-api/internal/config"
	"content-site-api/internal/domain"
	"content-site-api/internal/logger"
	"content-site-api/internal/metrics"
)

// sender is the part of the go-mail client the notifier needs.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

// SMTPNotifier sends notifications through a single SMTP relay. Every Send
// dials with its own client, so a notifier is safe for concurrent use.
type SMTPNotifier struct {
	newClient func() (sender, error)
}

// NewSMTPNotifier creates a notifier for the configured relay. SMTP auth is
// only enabled when a username is set.
func NewSMTPNotifier(cfg config.MailConfig) (*SMTPNotifier, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	if _, err := gomail.NewClient(cfg.Host, opts...); err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &SMTPNotifier{
		newClient: func() (sender, error) {
			return gomail.NewClient(cfg.Host, opts...)
		},
	}, nil
}

// Send delivers n synchronously.
func (s *SMTPNotifier) Send(ctx context.Context, n domain.Notification) error {
	msg, err := buildMessage(n)
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues(metrics.Result(err)).Inc()
		return err
	}

	client, err := s.newClient()
	if err == nil {
		err = client.DialAndSendWithContext(ctx, msg)
	}
	metrics.NotificationsTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	logger.InfoContext(ctx, "Notification sent", "to", n.To, "subject", n.Subject)
	return nil
}

func buildMessage(n domain.Notification) (*gomail.Msg, error) {
	if n.To == "" {
		return nil, errors.New("notification has no recipient")
	}

	msg := gomail.NewMsg()
	if err := msg.From(n.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", n.From, err)
	}
	if err := msg.To(n.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", n.To, err)
	}
	msg.Subject(n.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, n.Body)
	return msg, nil
}
