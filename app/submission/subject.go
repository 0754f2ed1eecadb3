package submission

import (
	"regexp"
	"strings"
)

// subjectByType maps the inquiry category from the form dropdown to the
// subject line used when the visitor left no meaningful subject of their own.
var subjectByType = map[string]string{
	"investment":  "Request Voyagr Pitch Deck",
	"partnership": "Partnership Opportunity",
	"development": "Development Services",
	"general":     "General Inquiry",
}

// genericSubjectPatterns lists placeholder subjects left over from form
// defaults. A subject matching any of them is replaced by the category
// label. Extend the list here rather than in the pipeline code.
var genericSubjectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^information\s*inquiry$`),
	regexp.MustCompile(`(?i)^new\s+(portfolio\s+)?inquiry$`),
}

// SubjectLabel resolves the inquiry category to its fixed subject label.
// Unknown or empty categories fall back to the general label.
func SubjectLabel(inquiryType string) string {
	normalized := strings.ToLower(strings.TrimSpace(inquiryType))
	if label, ok := subjectByType[normalized]; ok {
		return label
	}
	return subjectByType["general"]
}

// IsGenericSubject reports whether a user-supplied subject is too generic
// to use verbatim.
func IsGenericSubject(subject string) bool {
	trimmed := strings.TrimSpace(subject)
	if trimmed == "" {
		return true
	}
	for _, pattern := range genericSubjectPatterns {
		if pattern.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// DeriveSubject picks the final subject line: the category label when the
// user's subject is generic, the trimmed user subject verbatim otherwise.
func DeriveSubject(inquiryType, userSubject string) string {
	trimmed := strings.TrimSpace(userSubject)
	if IsGenericSubject(trimmed) {
		return SubjectLabel(inquiryType)
	}
	return trimmed
}
