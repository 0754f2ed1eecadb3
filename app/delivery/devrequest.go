package delivery

import (
	"context"
	"log/slog"

	"github.com/wmimouni/voyagr-api/app/mailer"
	"github.com/wmimouni/voyagr-api/app/submission"
)

// DevRequestSubject is the fixed subject line for developer request
// notifications; there is no subject derivation in this pipeline.
const DevRequestSubject = "New Developer On Demand Request"

// DevRequestPipeline notifies each configured recipient individually so the
// caller learns exactly which addresses received the request. Sends are
// strictly sequential and a failed recipient never aborts the loop.
type DevRequestPipeline struct {
	dispatcher mailer.Dispatcher
	from       string
	recipients []string
}

func NewDevRequestPipeline(dispatcher mailer.Dispatcher, from string, recipients []string) *DevRequestPipeline {
	return &DevRequestPipeline{
		dispatcher: dispatcher,
		from:       from,
		recipients: recipients,
	}
}

// Run renders the notification once and dispatches it to each recipient in
// turn, partitioning the outcomes. Partial success counts as success; the
// caller decides the response status from the two lists.
func (p *DevRequestPipeline) Run(ctx context.Context, req submission.DevRequest) (successes, failures []Outcome) {
	html := req.RenderHTML()
	text := req.RenderText()

	successes = make([]Outcome, 0, len(p.recipients))
	failures = make([]Outcome, 0)

	for _, recipient := range p.recipients {
		msg := mailer.Message{
			From:    p.from,
			To:      []string{recipient},
			Subject: DevRequestSubject,
			HTML:    html,
			Text:    text,
		}
		if req.Email != "" {
			msg.ReplyTo = req.Email
		}

		id, err := p.dispatcher.Send(ctx, msg)
		if err != nil {
			slog.Error("Developer request send failed", "recipient", recipient, "error", err)
			failures = append(failures, Outcome{Recipient: recipient, Error: err.Error()})
			continue
		}

		slog.Debug("Developer request sent", "recipient", recipient, "id", id)
		successes = append(successes, Outcome{Recipient: recipient, ID: id})
	}

	return successes, failures
}
