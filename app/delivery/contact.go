// Package delivery orchestrates the two submission-to-email pipelines:
// contact inquiries (single dispatch to the full recipient list) and
// developer requests (per-recipient fan-out with outcome aggregation).
package delivery

import (
	"context"

	"github.com/wmimouni/voyagr-api/app/mailer"
	"github.com/wmimouni/voyagr-api/app/submission"
)

// subjectPrefix brands the outer subject line of contact notifications.
const subjectPrefix = "Portfolio — "

// ContactPipeline turns a contact inquiry into a single email sent to all
// configured recipients at once. Per-recipient delivery detail is not
// surfaced; whether the provider treats a partially-invalid recipient list
// as failure is the provider's call.
type ContactPipeline struct {
	dispatcher mailer.Dispatcher
	from       string
	recipients []string
}

func NewContactPipeline(dispatcher mailer.Dispatcher, from string, recipients []string) *ContactPipeline {
	return &ContactPipeline{
		dispatcher: dispatcher,
		from:       from,
		recipients: recipients,
	}
}

// Run derives the subject line, renders both body variants, and issues one
// dispatch call carrying the full recipient list. Any failure is returned
// as-is; the HTTP layer collapses it into an opaque error response.
func (p *ContactPipeline) Run(ctx context.Context, inquiry submission.Inquiry) error {
	subjectLine := submission.DeriveSubject(inquiry.InquiryType, inquiry.Subject)

	msg := mailer.Message{
		From:    p.from,
		To:      p.recipients,
		Subject: subjectPrefix + subjectLine,
		HTML:    inquiry.RenderHTML(subjectLine),
		Text:    inquiry.RenderText(subjectLine),
	}
	if inquiry.Email != "" {
		msg.ReplyTo = inquiry.Email
	}

	_, err := p.dispatcher.Send(ctx, msg)
	return err
}
