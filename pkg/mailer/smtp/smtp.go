// Package smtp sends mail through an SMTP relay using gomail.
package smtp

import (
	"context"
	"referral/pkg/mailer"
	"referral/pkg/serrors"

	"gopkg.in/gomail.v2"
)

// Options configures the SMTP relay.
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Dialer opens a connection to the relay, sends the messages and closes it.
// *gomail.Dialer implements it.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// NewDialer returns a gomail dialer for opts. Port 465 uses implicit TLS,
// other ports upgrade with STARTTLS when the server offers it.
func NewDialer(opts Options) *gomail.Dialer {
	return gomail.NewDialer(opts.Host, opts.Port, opts.Username, opts.Password)
}

// Sender implements mailer.Sender on top of a Dialer.
type Sender struct {
	dialer Dialer
	from   string
}

var _ mailer.Sender = (*Sender)(nil)

// New returns a Sender that sends every message from the given address.
func New(dialer Dialer, from string) *Sender {
	return &Sender{dialer: dialer, from: from}
}

// Send delivers msg with a single connection attempt. gomail has no context
// support, so ctx is only checked before dialing.
func (s *Sender) Send(ctx context.Context, msg mailer.Message) error {
	if err := ctx.Err(); err != nil {
		return serrors.Wrap(serrors.ErrDeliveryFailed, err, "could not send email to %s", msg.To)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return serrors.Wrap(serrors.ErrDeliveryFailed, err, "could not send email to %s", msg.To)
	}

	return nil
}
