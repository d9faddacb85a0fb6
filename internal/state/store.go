// Package state persists the dedup memory that survives across pipeline
// runs: per-day buckets of posted title keys and artists, plus a rolling
// list of event keys pruned to a trailing window.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// DateLayout is the calendar-date form used for day buckets and event-key
// entries. Lexical comparison of these strings matches chronological order.
const DateLayout = "2006-01-02"

// DayBucket holds what was posted on one calendar date.
type DayBucket struct {
	Titles  []string `json:"titles"`
	Artists []string `json:"artists"`
}

// EventKeyEntry pairs an event fingerprint with the date it was admitted.
type EventKeyEntry struct {
	Key  string `json:"key"`
	Date string `json:"date"`
}

type snapshot struct {
	Days      map[string]DayBucket `json:"days"`
	EventKeys []EventKeyEntry      `json:"event_keys"`
}

// SeenState is the in-memory dedup state for a single run. It is loaded
// once at run start, mutated through Admit during the greedy admission
// loop, and written back once at run end. Only today's bucket is mutated;
// buckets for other days ride along untouched.
type SeenState struct {
	today   string
	days    map[string]DayBucket
	titles  map[string]struct{}
	artists map[string]struct{}
	events  map[string]struct{}
	entries []EventKeyEntry
}

// Today returns the active day-bucket date.
func (s *SeenState) Today() string { return s.today }

// HasTitle reports whether the title key was already posted today.
func (s *SeenState) HasTitle(key string) bool {
	_, ok := s.titles[key]
	return ok
}

// HasArtist reports whether the artist was already posted today.
func (s *SeenState) HasArtist(name string) bool {
	_, ok := s.artists[name]
	return ok
}

// HasEvent reports whether the event key was admitted within the rolling
// window.
func (s *SeenState) HasEvent(key string) bool {
	_, ok := s.events[key]
	return ok
}

// Admit records an admitted candidate: the title key and (when known) the
// artist go into today's bucket, and the event key joins the rolling list
// stamped with today's date.
func (s *SeenState) Admit(titleKey, artist, eventKey string) {
	s.titles[titleKey] = struct{}{}
	if artist != "" {
		s.artists[artist] = struct{}{}
	}
	if _, ok := s.events[eventKey]; !ok {
		s.events[eventKey] = struct{}{}
		s.entries = append(s.entries, EventKeyEntry{Key: eventKey, Date: s.today})
	}
}

// Store reads and writes SeenState snapshots as a single JSON document.
type Store struct {
	path   string
	window int
}

// NewStore returns a store over the given file path with a rolling dedup
// window of windowDays (inclusive of today).
func NewStore(path string, windowDays int) *Store {
	if windowDays < 1 {
		windowDays = 1
	}
	return &Store{path: path, window: windowDays}
}

// Load reads the persisted snapshot and prepares the state for a run dated
// today. Event-key entries older than the rolling window are dropped
// permanently. A missing, unreadable or corrupt file yields an empty state
// (cold start) together with a non-nil error describing why; the returned
// state is always usable and the error is informational only.
func (st *Store) Load(today time.Time) (*SeenState, error) {
	s := &SeenState{
		today:   today.Format(DateLayout),
		days:    make(map[string]DayBucket),
		titles:  make(map[string]struct{}),
		artists: make(map[string]struct{}),
		events:  make(map[string]struct{}),
	}

	raw, err := os.ReadFile(st.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read state %s: %w", st.path, err)
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return s, fmt.Errorf("decode state %s: %w", st.path, err)
	}

	for date, bucket := range snap.Days {
		s.days[date] = bucket
	}
	if bucket, ok := s.days[s.today]; ok {
		for _, t := range bucket.Titles {
			s.titles[t] = struct{}{}
		}
		for _, a := range bucket.Artists {
			s.artists[a] = struct{}{}
		}
	}

	cutoff := today.AddDate(0, 0, -(st.window - 1)).Format(DateLayout)
	for _, entry := range snap.EventKeys {
		if entry.Date < cutoff {
			continue
		}
		if _, ok := s.events[entry.Key]; ok {
			continue
		}
		s.events[entry.Key] = struct{}{}
		s.entries = append(s.entries, entry)
	}

	return s, nil
}

// Save writes the state back as one JSON document, atomically: the snapshot
// goes to a temp file in the same directory which is then renamed over the
// target. A run that crashes before Save leaves the previous state intact.
func (st *Store) Save(s *SeenState) error {
	snap := snapshot{
		Days:      make(map[string]DayBucket, len(s.days)+1),
		EventKeys: s.entries,
	}
	for date, bucket := range s.days {
		if date == s.today {
			continue
		}
		snap.Days[date] = bucket
	}
	snap.Days[s.today] = DayBucket{
		Titles:  sortedKeys(s.titles),
		Artists: sortedKeys(s.artists),
	}

	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	dir := filepath.Dir(st.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".seen-*.json")
	if err != nil {
		return fmt.Errorf("create temp state: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp state: %w", err)
	}
	if err := os.Rename(tmp.Name(), st.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace state %s: %w", st.path, err)
	}
	return nil
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
