package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendClient dispatches messages through the Resend API.
type ResendClient struct {
	client *resend.Client
}

var _ Dispatcher = (*ResendClient)(nil)

// NewResendClient creates a dispatcher backed by the Resend API. An empty
// API key is not rejected here; the provider refuses the send and the error
// surfaces like any other dispatch failure.
func NewResendClient(apiKey string) *ResendClient {
	return &ResendClient{
		client: resend.NewClient(apiKey),
	}
}

func (c *ResendClient) Send(ctx context.Context, msg Message) (string, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("resend send failed: %w", err)
	}

	return sent.Id, nil
}
