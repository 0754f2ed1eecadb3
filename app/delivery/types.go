package delivery

// Outcome records the result of one dispatch attempt to one recipient.
// Exactly one of ID and Error is set.
type Outcome struct {
	Recipient string `json:"rcpt"`
	ID        string `json:"id,omitempty"`
	Error     string `json:"error,omitempty"`
}
