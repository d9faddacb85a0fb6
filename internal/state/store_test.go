package state

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var day1 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestLoadMissingFileIsCleanColdStart(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "seen.json"), 3)

	s, err := store.Load(day1)
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if s.Today() != "2026-03-01" {
		t.Fatalf("unexpected today %q", s.Today())
	}
	if s.HasTitle("abc") || s.HasArtist("Coldplay") || s.HasEvent("k") {
		t.Fatalf("cold start must be empty")
	}
}

func TestRoundTripSameDay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	store := NewStore(path, 3)

	s, _ := store.Load(day1)
	s.Admit("t1", "Coldplay", "coldplay|germany|TOUR")
	s.Admit("t2", "", "unk|GEN|t2")
	if err := store.Save(s); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := store.Load(day1)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reloaded.HasTitle("t1") || !reloaded.HasTitle("t2") {
		t.Fatalf("titles lost on reload")
	}
	if !reloaded.HasArtist("Coldplay") {
		t.Fatalf("artist lost on reload")
	}
	if !reloaded.HasEvent("coldplay|germany|TOUR") || !reloaded.HasEvent("unk|GEN|t2") {
		t.Fatalf("event keys lost on reload")
	}
}

func TestDayBucketsResetButEventKeysPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	store := NewStore(path, 3)

	s, _ := store.Load(day1)
	s.Admit("t1", "Coldplay", "coldplay|germany|TOUR")
	if err := store.Save(s); err != nil {
		t.Fatalf("save: %v", err)
	}

	next, err := store.Load(day1.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if next.HasTitle("t1") {
		t.Fatalf("title bucket must reset on a new day")
	}
	if next.HasArtist("Coldplay") {
		t.Fatalf("artist bucket must reset on a new day")
	}
	if !next.HasEvent("coldplay|germany|TOUR") {
		t.Fatalf("event key must survive within the rolling window")
	}
}

func TestEventKeysPrunedBeyondWindow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	store := NewStore(path, 3)

	s, _ := store.Load(day1)
	s.Admit("t1", "Coldplay", "coldplay|germany|TOUR")
	if err := store.Save(s); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Day 4: window covers days 2-4, so the day-1 entry is gone.
	later, err := store.Load(day1.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if later.HasEvent("coldplay|germany|TOUR") {
		t.Fatalf("event key outside the window must be pruned")
	}

	// The prune is permanent: saving and loading back inside a hypothetical
	// wider view does not resurrect it.
	if err := store.Save(later); err != nil {
		t.Fatalf("save after prune: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read state: %v", err)
	}
	if strings.Contains(string(raw), "coldplay|germany|TOUR") {
		t.Fatalf("pruned key must not be written back")
	}
}

func TestOtherDayBucketsRideAlong(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	store := NewStore(path, 3)

	s, _ := store.Load(day1)
	s.Admit("t1", "Coldplay", "k1")
	if err := store.Save(s); err != nil {
		t.Fatalf("save day 1: %v", err)
	}

	day2 := day1.AddDate(0, 0, 1)
	s2, _ := store.Load(day2)
	s2.Admit("t2", "Adele", "k2")
	if err := store.Save(s2); err != nil {
		t.Fatalf("save day 2: %v", err)
	}

	// Reloading day 1 still sees its own bucket untouched.
	back, err := store.Load(day1)
	if err != nil {
		t.Fatalf("reload day 1: %v", err)
	}
	if !back.HasTitle("t1") || !back.HasArtist("Coldplay") {
		t.Fatalf("day-1 bucket was clobbered by the day-2 save")
	}
}

func TestLoadCorruptFileReturnsUsableState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	store := NewStore(path, 3)
	s, err := store.Load(day1)
	if err == nil {
		t.Fatalf("corrupt file should surface an informational error")
	}
	if s == nil {
		t.Fatalf("state must still be usable")
	}

	// The cold state can be admitted into and saved over the corrupt file.
	s.Admit("t1", "", "k1")
	if err := store.Save(s); err != nil {
		t.Fatalf("save over corrupt file: %v", err)
	}
	if _, err := store.Load(day1); err != nil {
		t.Fatalf("state should be readable after recovery: %v", err)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "seen.json"), 3)

	s, _ := store.Load(day1)
	s.Admit("t1", "", "k1")
	if err := store.Save(s); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "seen.json" {
		t.Fatalf("expected only seen.json in %s, got %v", dir, entries)
	}
}

func TestAdmitDeduplicatesEventEntries(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "seen.json"), 3)
	s, _ := store.Load(day1)

	s.Admit("t1", "Coldplay", "k1")
	s.Admit("t2", "Coldplay", "k1")
	if len(s.entries) != 1 {
		t.Fatalf("duplicate event key must not append twice, got %d entries", len(s.entries))
	}
}
