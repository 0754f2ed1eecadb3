// Package mailer defines the boundary to the transactional email provider
// and provides a Resend-backed implementation.
package mailer

import "context"

// Message is a single outbound email. To may hold several addresses; the
// provider decides how a multi-recipient send behaves.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Dispatcher sends one message and returns the provider-issued identifier.
// Implementations must not retry; a failed send is terminal for the caller.
type Dispatcher interface {
	Send(ctx context.Context, msg Message) (string, error)
}
