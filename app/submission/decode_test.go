package submission

import (
	"strings"
	"testing"
)

func TestDecode_ValidBody(t *testing.T) {
	body := `{"name":"Alice","email":"alice@example.com","subject":"Hi","message":"Hello","inquiry_type":"investment"}`

	var inquiry Inquiry
	Decode(strings.NewReader(body), &inquiry)

	if inquiry.Name != "Alice" {
		t.Errorf("Expected name 'Alice', got '%s'", inquiry.Name)
	}
	if inquiry.Email != "alice@example.com" {
		t.Errorf("Expected email 'alice@example.com', got '%s'", inquiry.Email)
	}
	if inquiry.InquiryType != "investment" {
		t.Errorf("Expected inquiry type 'investment', got '%s'", inquiry.InquiryType)
	}
}

func TestDecode_MalformedBodyLeavesZeroValues(t *testing.T) {
	var inquiry Inquiry
	Decode(strings.NewReader(`{not json`), &inquiry)

	if inquiry != (Inquiry{}) {
		t.Errorf("Expected zero-valued inquiry for malformed body, got %+v", inquiry)
	}
}

func TestDecode_EmptyAndNilBodies(t *testing.T) {
	var inquiry Inquiry

	Decode(strings.NewReader(""), &inquiry)
	if inquiry != (Inquiry{}) {
		t.Errorf("Expected zero-valued inquiry for empty body, got %+v", inquiry)
	}

	Decode(nil, &inquiry)
	if inquiry != (Inquiry{}) {
		t.Errorf("Expected zero-valued inquiry for nil body, got %+v", inquiry)
	}
}

func TestDecode_UnknownFieldsIgnored(t *testing.T) {
	body := `{"dev_type":"Backend","how_many":"3","extra_field":true}`

	var req DevRequest
	Decode(strings.NewReader(body), &req)

	if req.DevType != "Backend" {
		t.Errorf("Expected dev type 'Backend', got '%s'", req.DevType)
	}
	if req.HowMany != "3" {
		t.Errorf("Expected how many '3', got '%s'", req.HowMany)
	}
}
