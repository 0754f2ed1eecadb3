// Package content loads the static portfolio collections (projects,
// experience, events, recognition), normalizes the loosely-typed records,
// and serves them sorted for display. The files are read once at startup
// and never written back.
package content

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Store holds the normalized collections. It is populated once by Run and
// read-only afterwards, so concurrent handler access needs no locking.
type Store struct {
	dir string

	projects    []Project
	experiences []Experience
	events      []Event
	recognition []Recognition
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Run loads every collection from the content directory. A missing file
// yields an empty collection; a malformed file is a startup error.
func (s *Store) Run() error {
	rawProjects, err := s.loadCollection("projects")
	if err != nil {
		return err
	}
	rawExperience, err := s.loadCollection("experience")
	if err != nil {
		return err
	}
	rawEvents, err := s.loadCollection("events")
	if err != nil {
		return err
	}
	rawRecognition, err := s.loadCollection("recognition")
	if err != nil {
		return err
	}

	s.projects = make([]Project, 0, len(rawProjects))
	for _, record := range rawProjects {
		s.projects = append(s.projects, normalizeProject(record))
	}
	sortProjects(s.projects)

	s.experiences = make([]Experience, 0, len(rawExperience))
	for _, record := range rawExperience {
		s.experiences = append(s.experiences, normalizeExperience(record))
	}
	sortExperiences(s.experiences)

	s.events = make([]Event, 0, len(rawEvents))
	for _, record := range rawEvents {
		s.events = append(s.events, normalizeEvent(record))
	}
	sortEvents(s.events)

	s.recognition = make([]Recognition, 0, len(rawRecognition))
	for _, record := range rawRecognition {
		s.recognition = append(s.recognition, normalizeRecognition(record))
	}
	sortRecognition(s.recognition)

	slog.Debug("Content store loaded",
		"projects", len(s.projects),
		"experiences", len(s.experiences),
		"events", len(s.events),
		"recognition", len(s.recognition))

	return nil
}

// loadCollection reads <name>.json or <name>.yml from the content
// directory into loose records. JSON is the canonical format; YAML is
// accepted for hand-edited files.
func (s *Store) loadCollection(name string) ([]map[string]any, error) {
	jsonPath := filepath.Join(s.dir, name+".json")
	if data, err := os.ReadFile(jsonPath); err == nil {
		var records []map[string]any
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", jsonPath, err)
		}
		return records, nil
	}

	ymlPath := filepath.Join(s.dir, name+".yml")
	if data, err := os.ReadFile(ymlPath); err == nil {
		var records []map[string]any
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", ymlPath, err)
		}
		return records, nil
	}

	return nil, nil
}

func (s *Store) Projects() []Project {
	return s.projects
}

func (s *Store) Experiences() []Experience {
	return s.experiences
}

func (s *Store) Events() []Event {
	return s.events
}

func (s *Store) Recognition() []Recognition {
	return s.recognition
}

// EventsByType filters events by their lowercased type label, e.g.
// "keynote", "panel", "podcast".
func (s *Store) EventsByType(eventType string) []Event {
	t := strings.ToLower(strings.TrimSpace(eventType))
	matched := make([]Event, 0)
	for _, event := range s.events {
		if event.Type == t {
			matched = append(matched, event)
		}
	}
	return matched
}

// SplitEvents partitions events into upcoming and past relative to now.
// Events without a date count as past.
func (s *Store) SplitEvents(now time.Time) (upcoming, past []Event) {
	upcoming = make([]Event, 0)
	past = make([]Event, 0)
	for _, event := range s.events {
		if event.Date != nil && !event.Date.Before(now) {
			upcoming = append(upcoming, event)
		} else {
			past = append(past, event)
		}
	}
	return upcoming, past
}

// sortProjects orders featured first, then year descending (missing years
// last), then title.
func sortProjects(projects []Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		a, b := projects[i], projects[j]
		if a.Featured != b.Featured {
			return a.Featured
		}
		if ya, yb := yearScore(a.Year), yearScore(b.Year); ya != yb {
			return ya > yb
		}
		return a.Title < b.Title
	})
}

// sortExperiences orders current roles first, then end year descending,
// then start year descending, then company+title.
func sortExperiences(experiences []Experience) {
	sort.SliceStable(experiences, func(i, j int) bool {
		a, b := experiences[i], experiences[j]
		if (a.EndYear == nil) != (b.EndYear == nil) {
			return a.EndYear == nil
		}
		if ea, eb := yearScore(a.EndYear), yearScore(b.EndYear); ea != eb {
			return ea > eb
		}
		if sa, sb := yearScore(a.StartYear), yearScore(b.StartYear); sa != sb {
			return sa > sb
		}
		return a.Company+a.Title < b.Company+b.Title
	})
}

// sortEvents orders newest first with undated events last, then title.
func sortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		ta, tb := dateScore(a.Date), dateScore(b.Date)
		if !ta.Equal(tb) {
			return ta.After(tb)
		}
		return a.Title < b.Title
	})
}

// sortRecognition orders year descending (missing years last), then title.
func sortRecognition(recognition []Recognition) {
	sort.SliceStable(recognition, func(i, j int) bool {
		a, b := recognition[i], recognition[j]
		if ya, yb := yearScore(a.Year), yearScore(b.Year); ya != yb {
			return ya > yb
		}
		return a.Title < b.Title
	})
}

// yearScore maps a missing year below every real one so nil sorts last in
// descending order.
func yearScore(year *float64) float64 {
	if year == nil {
		return -1 << 30
	}
	return *year
}

// dateScore maps a missing date to the zero time for the same reason.
func dateScore(date *time.Time) time.Time {
	if date == nil {
		return time.Time{}
	}
	return *date
}
