package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/cakes/internal/cakes"
)

func TestStore_ReplaceAllAndAccessors(t *testing.T) {
	var s Store

	records := []cakes.Record{
		{Title: "Victoria Sponge", Description: "Classic", ImageURL: "http://x/1.png"},
		{Title: "Banana cake", Description: "Donkey kongs favourite", ImageURL: "http://x/2.png"},
	}

	before := time.Now()
	s.ReplaceAll(records)

	if got := s.Count(); got != 2 {
		t.Fatalf("Count = %d, want 2", got)
	}
	rec, ok := s.ItemAt(1)
	if !ok || rec.Title != "Banana cake" {
		t.Fatalf("ItemAt(1) = %#v, %v; want Banana cake", rec, ok)
	}
	if _, ok := s.ItemAt(2); ok {
		t.Fatal("ItemAt(2) ok = true, want false")
	}
	if _, ok := s.ItemAt(-1); ok {
		t.Fatal("ItemAt(-1) ok = true, want false")
	}

	snap := s.Snapshot()
	if snap.Phase != PhaseDisplaying {
		t.Fatalf("Phase = %v, want displaying", snap.Phase)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if !reflect.DeepEqual(snap.Records, records) {
		t.Fatalf("Snapshot records = %#v, want %#v", snap.Records, records)
	}

	// Neither the caller's slice nor a snapshot may alias the backing list.
	records[0].Title = "mutated"
	snap.Records[1].Title = "mutated"
	if rec, _ := s.ItemAt(0); rec.Title != "Victoria Sponge" {
		t.Fatalf("ReplaceAll should copy input; got %q", rec.Title)
	}
	if rec, _ := s.ItemAt(1); rec.Title != "Banana cake" {
		t.Fatalf("Snapshot should clone records; got %q", rec.Title)
	}
}

func TestStore_ReplaceAllEmpty(t *testing.T) {
	var s Store
	s.ReplaceAll([]cakes.Record{{Title: "a"}})
	s.ReplaceAll([]cakes.Record{})

	if got := s.Count(); got != 0 {
		t.Fatalf("Count = %d, want 0", got)
	}
	if got := s.Records(); len(got) != 0 {
		t.Fatalf("Records = %#v, want empty", got)
	}
	if s.Snapshot().Phase != PhaseDisplaying {
		t.Fatalf("Phase = %v, want displaying", s.Snapshot().Phase)
	}
}

func TestStore_FailClearsRecordsAndKeepsError(t *testing.T) {
	var s Store
	s.ReplaceAll([]cakes.Record{{Title: "a"}})

	origErr := errors.New("boom")
	s.Fail(origErr)

	snap := s.Snapshot()
	if snap.Phase != PhaseFailed {
		t.Fatalf("Phase = %v, want failed", snap.Phase)
	}
	if len(snap.Records) != 0 || s.Count() != 0 {
		t.Fatalf("records = %#v, want none after failure", snap.Records)
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("LastError = %v, want wrapping boom", snap.LastError)
	}

	s.ReplaceAll(nil)
	if s.Snapshot().LastError != nil {
		t.Fatal("ReplaceAll should clear LastError")
	}
}

func TestStore_ChangedCoalescesSignals(t *testing.T) {
	var s Store
	ch := s.Changed()

	s.SetPhase(PhaseFetching)
	s.SetPhase(PhaseParsing)
	s.ReplaceAll(nil)

	select {
	case <-ch:
	default:
		t.Fatal("expected a pending change signal")
	}
	select {
	case <-ch:
		t.Fatal("signals should coalesce into one")
	default:
	}
}

func TestPhase_StringAndBusy(t *testing.T) {
	busy := map[Phase]bool{
		PhaseIdle:                 false,
		PhaseCheckingConnectivity: true,
		PhaseFetching:             true,
		PhaseParsing:              true,
		PhaseDisplaying:           false,
		PhaseNoConnection:         false,
		PhaseFailed:               false,
	}
	for p, want := range busy {
		if p.Busy() != want {
			t.Fatalf("%v.Busy() = %v, want %v", p, p.Busy(), want)
		}
		if p.String() == "" {
			t.Fatalf("phase %d has empty String()", int(p))
		}
	}
	if got := Phase(42).String(); got != "phase(42)" {
		t.Fatalf("String = %q, want phase(42)", got)
	}
}
