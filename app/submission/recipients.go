package submission

import "strings"

// SplitRecipients turns a configured destination string into an ordered
// recipient list: split on ';' or ',', trim each piece, drop empties. An
// empty configured string falls back to fallback, itself split the same way
// for robustness. No deduplication and no address validation; a configured
// string of only separators yields an empty list.
func SplitRecipients(configured, fallback string) []string {
	source := configured
	if source == "" {
		source = fallback
	}

	pieces := strings.FieldsFunc(source, func(r rune) bool {
		return r == ';' || r == ','
	})

	recipients := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		if trimmed := strings.TrimSpace(piece); trimmed != "" {
			recipients = append(recipients, trimmed)
		}
	}
	return recipients
}
