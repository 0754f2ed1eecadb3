package content

import (
	"testing"
	"time"
)

func TestNumberOrNull(t *testing.T) {
	tests := []struct {
		input    any
		expected *float64
	}{
		{2023, ptr(2023)},
		{float64(1999), ptr(1999)},
		{"2024", ptr(2024)},
		{" 150 ", ptr(150)},
		{"", nil},
		{"Present", nil},
		{"NaN", nil},
		{"Inf", nil},
		{nil, nil},
		{true, nil},
		{[]any{1}, nil},
	}

	for _, test := range tests {
		result := numberOrNull(test.input)
		if (result == nil) != (test.expected == nil) {
			t.Errorf("numberOrNull(%v): expected %v, got %v", test.input, test.expected, result)
			continue
		}
		if result != nil && *result != *test.expected {
			t.Errorf("numberOrNull(%v): expected %v, got %v", test.input, *test.expected, *result)
		}
	}
}

func TestCleanString(t *testing.T) {
	if cleanString("  hello  ") != "hello" {
		t.Error("Expected surrounding whitespace to be trimmed")
	}
	if cleanString(nil) != "" {
		t.Error("Expected empty string for nil")
	}
	if cleanString(42) != "" {
		t.Error("Expected empty string for non-string value")
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		input    any
		expected string
	}{
		{"https://example.com", "https://example.com"},
		{"HTTP://example.com", "HTTP://example.com"},
		{"example.com/talk", "https://example.com/talk"},
		{"//cdn.example.com/video", "https://cdn.example.com/video"},
		{"", ""},
		{nil, ""},
	}

	for _, test := range tests {
		result := normalizeURL(test.input)
		if result != test.expected {
			t.Errorf("normalizeURL(%v): expected %q, got %q", test.input, test.expected, result)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Keynote: Travel Tech!", "keynote-travel-tech"},
		{"  spaces  everywhere  ", "spaces-everywhere"},
		{"Café Über Markt", "cafe-uber-markt"},
		{"already-slugged", "already-slugged"},
		{"", ""},
	}

	for _, test := range tests {
		result := slugify(test.input)
		if result != test.expected {
			t.Errorf("slugify(%q): expected %q, got %q", test.input, test.expected, result)
		}
	}
}

func TestStringList(t *testing.T) {
	fromArray := stringList([]any{"go", " react ", ""})
	if len(fromArray) != 2 || fromArray[0] != "go" || fromArray[1] != "react" {
		t.Errorf("Expected cleaned array values, got %v", fromArray)
	}

	fromString := stringList("go, react,,node")
	if len(fromString) != 3 || fromString[2] != "node" {
		t.Errorf("Expected comma-split values, got %v", fromString)
	}

	fromNil := stringList(nil)
	if len(fromNil) != 0 {
		t.Errorf("Expected empty list for nil, got %v", fromNil)
	}
}

func TestNormalizeProject(t *testing.T) {
	project := normalizeProject(map[string]any{
		"title":       "  Voyagr  ",
		"description": "Travel platform",
		"year":        float64(2023),
		"url":         "voyagr.app",
		"tags":        "travel, saas",
		"featured":    true,
	})

	if project.Title != "Voyagr" {
		t.Errorf("Expected trimmed title, got %q", project.Title)
	}
	if project.Year == nil || *project.Year != 2023 {
		t.Errorf("Expected year 2023, got %v", project.Year)
	}
	if project.URL != "https://voyagr.app" {
		t.Errorf("Expected normalized URL, got %q", project.URL)
	}
	if len(project.Tags) != 2 {
		t.Errorf("Expected 2 tags, got %v", project.Tags)
	}
	if !project.Featured {
		t.Error("Expected featured flag to carry over")
	}
	if project.ID == "" {
		t.Error("Expected a generated ID when none is given")
	}
}

func TestNormalizeProject_KeepsProvidedID(t *testing.T) {
	project := normalizeProject(map[string]any{"id": "proj-1", "title": "X"})
	if project.ID != "proj-1" {
		t.Errorf("Expected provided ID to be kept, got %q", project.ID)
	}
}

func TestNormalizeExperience(t *testing.T) {
	experience := normalizeExperience(map[string]any{
		"title":      "CTO",
		"company":    "Voyagr",
		"start_year": float64(2021),
		"end_year":   "Present",
		"type":       "Full Time",
		"website":    "voyagr.app",
	})

	if experience.StartYear == nil || *experience.StartYear != 2021 {
		t.Errorf("Expected start year 2021, got %v", experience.StartYear)
	}
	if experience.EndYear != nil {
		t.Errorf("Expected nil end year for current role, got %v", *experience.EndYear)
	}
	if experience.Type != "full_time" {
		t.Errorf("Expected snake_cased type, got %q", experience.Type)
	}
	if experience.Website != "https://voyagr.app" {
		t.Errorf("Expected normalized website, got %q", experience.Website)
	}
	if experience.ID != "cto-voyagr-2021-end" {
		t.Errorf("Expected deterministic ID, got %q", experience.ID)
	}
}

func TestNormalizeExperience_AlternateKeys(t *testing.T) {
	experience := normalizeExperience(map[string]any{
		"title":     "Engineer",
		"company":   "Acme",
		"startYear": "2018",
		"endYear":   float64(2020),
		"logoUrl":   "logo.png",
	})

	if experience.StartYear == nil || *experience.StartYear != 2018 {
		t.Errorf("Expected start year from camelCase key, got %v", experience.StartYear)
	}
	if experience.EndYear == nil || *experience.EndYear != 2020 {
		t.Errorf("Expected end year 2020, got %v", experience.EndYear)
	}
	if experience.LogoURL != "logo.png" {
		t.Errorf("Expected logo from camelCase key, got %q", experience.LogoURL)
	}
}

func TestNormalizeEvent(t *testing.T) {
	event := normalizeEvent(map[string]any{
		"title":         "Keynote on Travel Tech",
		"event_name":    "WebSummit",
		"type":          "Keynote",
		"date":          "2024-03-15",
		"audience_size": float64(1200),
		"link_url":      "youtube.com/watch?v=abc",
	})

	if event.Date == nil {
		t.Fatal("Expected parsed date")
	}
	if event.Date.Format("2006-01-02") != "2024-03-15" {
		t.Errorf("Expected date 2024-03-15, got %v", event.Date)
	}
	if event.Type != "keynote" {
		t.Errorf("Expected lowercased type, got %q", event.Type)
	}
	if event.AudienceSize == nil || *event.AudienceSize != 1200 {
		t.Errorf("Expected audience size 1200, got %v", event.AudienceSize)
	}
	if event.VideoURL != "https://youtube.com/watch?v=abc" {
		t.Errorf("Expected normalized video URL, got %q", event.VideoURL)
	}
	if event.ID != "keynote-on-travel-tech-2024-03-15" {
		t.Errorf("Expected slug-plus-date ID, got %q", event.ID)
	}
}

func TestNormalizeEvent_MissingDate(t *testing.T) {
	event := normalizeEvent(map[string]any{"title": "Podcast Appearance"})

	if event.Date != nil {
		t.Errorf("Expected nil date, got %v", event.Date)
	}
	if event.Type != "event" {
		t.Errorf("Expected default type 'event', got %q", event.Type)
	}
	if event.ID != "podcast-appearance-nodate" {
		t.Errorf("Expected nodate ID suffix, got %q", event.ID)
	}
}

func TestNormalizeEvent_StartDateFallback(t *testing.T) {
	event := normalizeEvent(map[string]any{
		"title":      "Panel",
		"start_date": "2023-06-01T10:00:00Z",
	})

	if event.Date == nil {
		t.Fatal("Expected date parsed from start_date")
	}
	expected := time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC)
	if !event.Date.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, event.Date)
	}
}

func TestNormalizeRecognition(t *testing.T) {
	recognition := normalizeRecognition(map[string]any{
		"title":        "Best Travel Startup",
		"organization": "TechCrunch",
		"year":         "2022",
		"type":         "award",
	})

	if recognition.Year == nil || *recognition.Year != 2022 {
		t.Errorf("Expected year 2022, got %v", recognition.Year)
	}
	if recognition.Organization != "TechCrunch" {
		t.Errorf("Expected organization, got %q", recognition.Organization)
	}
	if recognition.ID == "" {
		t.Error("Expected a generated ID when none is given")
	}
}

func ptr(n float64) *float64 {
	return &n
}
