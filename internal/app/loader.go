package app

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/five82/cakes/internal/cakes"
	"github.com/five82/cakes/internal/connectivity"
	"github.com/five82/cakes/internal/state"
)

type loadStage int

const (
	stageParsing loadStage = iota
	stageDone
)

// loadEvent is what the worker reports back to the screen.
type loadEvent struct {
	stage   loadStage
	records []cakes.Record
	err     error
}

// StartLoader runs Load in a background goroutine. It returns immediately.
func StartLoader(ctx context.Context, store *state.Store, checker connectivity.Checker, fetcher cakes.Fetcher) {
	go Load(ctx, store, checker, fetcher)
}

// Load drives one catalogue load into store. When checker reports no
// connectivity the fetcher is never called. Otherwise a single worker
// fetches and parses; its results are applied only while ctx is live, so a
// screen that has gone away silently drops a late result.
func Load(ctx context.Context, store *state.Store, checker connectivity.Checker, fetcher cakes.Fetcher) {
	id := uuid.NewString()

	if ctx.Err() != nil {
		return
	}
	store.SetPhase(state.PhaseCheckingConnectivity)
	connected := checker.Connected(ctx)
	if ctx.Err() != nil {
		log.Printf("load=%s screen closed during connectivity check", id)
		return
	}
	if !connected {
		log.Printf("load=%s no network connection available", id)
		store.SetPhase(state.PhaseNoConnection)
		return
	}

	store.SetPhase(state.PhaseFetching)
	log.Printf("load=%s fetching catalogue", id)

	// Buffered so the worker never blocks once the screen stops reading.
	events := make(chan loadEvent, 2)
	go work(ctx, fetcher, events)

	for {
		select {
		case <-ctx.Done():
			log.Printf("load=%s screen closed, dropping result", id)
			return
		case ev := <-events:
			if ctx.Err() != nil {
				log.Printf("load=%s screen closed, dropping result", id)
				return
			}
			if ev.stage == stageParsing {
				store.SetPhase(state.PhaseParsing)
				continue
			}
			if ev.err != nil {
				log.Printf("load=%s kind=%s failed: %v", id, cakes.Kind(ev.err), ev.err)
				store.Fail(ev.err)
				return
			}
			log.Printf("load=%s loaded count=%d", id, len(ev.records))
			store.ReplaceAll(ev.records)
			return
		}
	}
}

func work(ctx context.Context, fetcher cakes.Fetcher, events chan<- loadEvent) {
	body, err := fetcher.FetchBody(ctx)
	if err != nil {
		events <- loadEvent{stage: stageDone, err: err}
		return
	}
	events <- loadEvent{stage: stageParsing}
	records, err := cakes.Parse(body)
	events <- loadEvent{stage: stageDone, records: records, err: err}
}
