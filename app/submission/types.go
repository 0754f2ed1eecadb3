// Package submission holds the form submission types and the pure policy
// around them: subject derivation, content rendering, and recipient
// resolution. Nothing here touches the network.
package submission

// Inquiry is a visitor's contact form submission. All fields may be empty;
// missing values are absorbed by defaulting, never rejected.
type Inquiry struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	InquiryType string `json:"inquiry_type"`
}

// DevRequest is a structured staffing request from the "developer on
// demand" form.
type DevRequest struct {
	DevType         string `json:"dev_type"`
	HowMany         string `json:"how_many"`
	FrameworkNeeded string `json:"framework_needed"`
	WhenNeeded      string `json:"when_needed"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
}
