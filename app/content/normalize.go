package content

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	schemeRe    = regexp.MustCompile(`(?i)^https?://`)
	nonSlugRe   = regexp.MustCompile(`[^a-z0-9]+`)
	edgeDashRe  = regexp.MustCompile(`(^-|-$)+`)
	whitespace  = regexp.MustCompile(`\s+`)
	deaccenting = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// cleanString trims a string value from a loose record; any non-string
// value collapses to the empty string.
func cleanString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// stringField returns the first non-empty cleaned string among the given
// keys of a raw record.
func stringField(record map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := cleanString(record[key]); s != "" {
			return s
		}
	}
	return ""
}

// numberOrNull coerces a loose value to a finite number, or nil. Strings
// are parsed; NaN, infinities, and anything unparseable yield nil, never a
// NaN or a string leaking into the normalized record.
func numberOrNull(v any) *float64 {
	var n float64
	switch value := v.(type) {
	case float64:
		n = value
	case float32:
		n = float64(value)
	case int:
		n = float64(value)
	case int64:
		n = float64(value)
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil
		}
		n = parsed
	default:
		return nil
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

// boolField follows JS truthiness for the loosely-typed source records:
// false, 0, nil, and "" are false; everything else is true.
func boolField(v any) bool {
	switch value := v.(type) {
	case bool:
		return value
	case string:
		return value != ""
	case float64:
		return value != 0
	case int:
		return value != 0
	case nil:
		return false
	default:
		return true
	}
}

// stringList accepts either an array of values or a comma-separated string.
func stringList(v any) []string {
	switch value := v.(type) {
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			if s := cleanString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		pieces := strings.Split(value, ",")
		out := make([]string, 0, len(pieces))
		for _, piece := range pieces {
			if s := strings.TrimSpace(piece); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

// normalizeURL prefixes https:// when the value has no scheme, so bare
// domains from hand-edited content files still render as working links.
func normalizeURL(v any) string {
	s := cleanString(v)
	if s == "" {
		return ""
	}
	if schemeRe.MatchString(s) {
		return s
	}
	return "https://" + strings.TrimPrefix(s, "//")
}

// slugify builds a URL-safe identifier fragment: lowercased, diacritics
// folded, runs of non-alphanumerics squeezed to a single dash.
func slugify(s string) string {
	folded, _, err := transform.String(deaccenting, strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}
	slug := nonSlugRe.ReplaceAllString(folded, "-")
	return edgeDashRe.ReplaceAllString(slug, "")
}

// randomID is the fallback when a record offers no deterministic key.
func randomID() string {
	return uuid.NewString()
}

// snakeCase lowers a label and joins its words with underscores, matching
// what the presentation layer expects for type fields.
func snakeCase(s string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "_")
}

// dateLayouts are tried in order when parsing event dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
}

// parseDate parses a loose date value, returning nil for anything that is
// missing or unparseable.
func parseDate(v any) *time.Time {
	s := cleanString(v)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return &parsed
		}
	}
	return nil
}

func normalizeProject(record map[string]any) Project {
	id := cleanString(record["id"])
	if id == "" {
		id = randomID()
	}

	return Project{
		ID:          id,
		Title:       cleanString(record["title"]),
		Description: cleanString(record["description"]),
		Category:    cleanString(record["category"]),
		Status:      cleanString(record["status"]),
		Year:        numberOrNull(record["year"]),
		URL:         normalizeURL(record["url"]),
		ImageURL:    cleanString(record["image_url"]),
		Impact:      cleanString(record["impact"]),
		Tags:        stringList(record["tags"]),
		Featured:    boolField(record["featured"]),
	}
}

func normalizeExperience(record map[string]any) Experience {
	startYear := firstNumber(record, "start_year", "startYear", "start")
	endYear := firstNumber(record, "end_year", "endYear", "end")
	if isPresent(record["end_year"]) || isPresent(record["endYear"]) {
		endYear = nil // ongoing role
	}

	id := cleanString(record["id"])
	if id == "" {
		id = experienceID(cleanString(record["title"]), cleanString(record["company"]), startYear, endYear)
	}

	return Experience{
		ID:          id,
		Title:       cleanString(record["title"]),
		Company:     cleanString(record["company"]),
		Description: cleanString(record["description"]),
		Location:    cleanString(record["location"]),
		LogoURL:     stringField(record, "logo_url", "logoUrl", "logo"),
		Website:     normalizeURL(stringField(record, "website", "company_url", "url")),
		StartYear:   startYear,
		EndYear:     endYear,
		Type:        snakeCase(cleanString(record["type"])),
	}
}

func normalizeEvent(record map[string]any) Event {
	date := parseDate(record["date"])
	if date == nil {
		date = parseDate(record["start_date"])
	}

	eventType := strings.ToLower(cleanString(record["type"]))
	if eventType == "" {
		eventType = "event"
	}

	id := cleanString(record["id"])
	if id == "" {
		id = eventID(cleanString(record["title"]), date)
	}

	return Event{
		ID:           id,
		Title:        cleanString(record["title"]),
		Description:  cleanString(record["description"]),
		EventName:    stringField(record, "event_name", "name"),
		Type:         eventType,
		Date:         date,
		Location:     cleanString(record["location"]),
		AudienceSize: numberOrNull(record["audience_size"]),
		VideoURL:     normalizeURL(stringField(record, "video_url", "link_url")),
	}
}

func normalizeRecognition(record map[string]any) Recognition {
	id := cleanString(record["id"])
	if id == "" {
		id = randomID()
	}

	return Recognition{
		ID:           id,
		Title:        cleanString(record["title"]),
		Organization: cleanString(record["organization"]),
		Description:  cleanString(record["description"]),
		Year:         numberOrNull(record["year"]),
		Location:     cleanString(record["location"]),
		Type:         cleanString(record["type"]),
		ImageURL:     cleanString(record["image_url"]),
		LinkURL:      cleanString(record["link_url"]),
		CreatedDate:  cleanString(record["created_date"]),
	}
}

// firstNumber returns the first key that coerces to a finite number.
func firstNumber(record map[string]any, keys ...string) *float64 {
	for _, key := range keys {
		if n := numberOrNull(record[key]); n != nil {
			return n
		}
	}
	return nil
}

// isPresent reports the sentinel end-year value marking an ongoing role.
func isPresent(v any) bool {
	return cleanString(v) == "Present"
}

// experienceID builds a deterministic slug from the identifying fields of a
// work history entry, e.g. "cto-voyagr-2021-end".
func experienceID(title, company string, start, end *float64) string {
	part := func(s, fallback string) string {
		if s == "" {
			return fallback
		}
		return s
	}
	yearPart := func(n *float64, fallback string) string {
		if n == nil {
			return fallback
		}
		return strconv.FormatFloat(*n, 'f', -1, 64)
	}

	joined := strings.Join([]string{
		part(title, "role"),
		part(company, "org"),
		yearPart(start, "start"),
		yearPart(end, "end"),
	}, "-")
	return slugify(joined)
}

// eventID builds a deterministic slug from title plus date, e.g.
// "keynote-on-travel-tech-2024-03-15" or "...-nodate".
func eventID(title string, date *time.Time) string {
	slug := slugify(title)
	if slug == "" {
		slug = "event"
	}
	if date == nil {
		return slug + "-nodate"
	}
	return slug + "-" + date.UTC().Format("2006-01-02")
}
