// Package mailer defines how the service hands outgoing email to a transport.
//
//go:generate mockgen -package mockmailer -source=interface.go -destination=mock/mockmailer.go *
package mailer

import "context"

// Message is a plain text email to a single recipient.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers messages. Each call makes exactly one delivery attempt;
// failures are returned with the serrors.ErrDeliveryFailed kind.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
