package submission

import (
	"fmt"
	"strings"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeHTML guards the three HTML-significant characters in user-supplied
// text before it is embedded in the HTML variant. The plain-text variant
// carries the raw values.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// RenderHTML produces the HTML notification body for a contact inquiry.
// subjectLine is the already-derived final subject (see DeriveSubject).
func (i Inquiry) RenderHTML(subjectLine string) string {
	label := SubjectLabel(i.InquiryType)

	return fmt.Sprintf(`
      <div style="font-family:system-ui,-apple-system,Segoe UI,Roboto,Arial;line-height:1.6">
        <h2 style="margin:0 0 8px">New Portfolio Inquiry (%s)</h2>
        <p><b>Name:</b> %s</p>
        <p><b>Email:</b> %s</p>
        <p><b>Subject:</b> %s</p>
        <h3 style="margin:16px 0 6px">Message</h3>
        <div style="background:#f6f7f9;padding:12px;border-radius:8px;white-space:pre-wrap">
          %s
        </div>
      </div>
    `,
		EscapeHTML(label),
		EscapeHTML(i.Name),
		EscapeHTML(i.Email),
		EscapeHTML(subjectLine),
		EscapeHTML(i.Message),
	)
}

// RenderText produces the plain-text equivalent of RenderHTML.
func (i Inquiry) RenderText(subjectLine string) string {
	label := SubjectLabel(i.InquiryType)

	return fmt.Sprintf(`New Portfolio Inquiry (%s)

Name: %s
Email: %s
Subject: %s

Message:
%s
`, label, i.Name, i.Email, subjectLine, i.Message)
}

// RenderHTML produces the HTML notification body for a developer request.
func (d DevRequest) RenderHTML() string {
	return fmt.Sprintf(`
      <div style="font-family:system-ui,-apple-system,Segoe UI,Roboto,Arial;line-height:1.6">
        <h2 style="margin:0 0 8px">New Developer On Demand Request</h2>
        <p><b>Name:</b> %s</p>
        <p><b>Email:</b> %s</p>
        <p><b>Phone:</b> %s</p>
        <h3 style="margin:16px 0 6px">Request Details</h3>
        <ul>
          <li><b>Developer Type:</b> %s</li>
          <li><b>How Many:</b> %s</li>
          <li><b>Framework Needed:</b> %s</li>
          <li><b>When Needed:</b> %s</li>
        </ul>
      </div>
    `,
		EscapeHTML(d.Name),
		EscapeHTML(d.Email),
		EscapeHTML(d.Phone),
		EscapeHTML(d.DevType),
		EscapeHTML(d.HowMany),
		EscapeHTML(d.FrameworkNeeded),
		EscapeHTML(d.WhenNeeded),
	)
}

// RenderText produces the plain-text equivalent of RenderHTML.
func (d DevRequest) RenderText() string {
	return fmt.Sprintf(`New Developer On Demand Request

Name: %s
Email: %s
Phone: %s

Developer Type: %s
How Many: %s
Framework Needed: %s
When Needed: %s
`, d.Name, d.Email, d.Phone, d.DevType, d.HowMany, d.FrameworkNeeded, d.WhenNeeded)
}
