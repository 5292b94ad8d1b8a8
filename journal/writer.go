package journal

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/sling/event"
)

const writerBuffer = 64

// Writer records charge outcomes off the frame loop
// HandleEvent never blocks; entries beyond the buffer are dropped with a warning
type Writer struct {
	path  string
	store *Store

	entries chan Entry
	wg      sync.WaitGroup
	once    sync.Once
	started bool
	closed  atomic.Bool
}

// NewWriter creates a writer for the journal at path; the store opens on Init
func NewWriter(path string) *Writer {
	return &Writer{
		path:    path,
		entries: make(chan Entry, writerBuffer),
	}
}

// Store returns the underlying store, nil before Init
func (w *Writer) Store() *Store {
	return w.store
}

// Name implements service.Service
func (w *Writer) Name() string {
	return "journal"
}

// Dependencies implements service.Service
func (w *Writer) Dependencies() []string {
	return nil
}

// Init implements service.Service
func (w *Writer) Init(args ...any) error {
	if w.store != nil {
		return nil
	}
	store, err := Open(w.path)
	if err != nil {
		return err
	}
	w.store = store
	return nil
}

// Start implements service.Service
func (w *Writer) Start() error {
	if w.started {
		return nil
	}
	w.started = true
	w.wg.Add(1)
	go w.run()
	return nil
}

// Stop flushes queued entries and closes the store; idempotent
func (w *Writer) Stop() error {
	var err error
	w.once.Do(func() {
		w.closed.Store(true)
		close(w.entries)
		w.wg.Wait()
		if w.store != nil {
			err = w.store.Close()
		}
	})
	return err
}

// EventTypes returns the notifications that end a session
func (w *Writer) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventShotFired,
		event.EventChargeCancelled,
	}
}

// HandleEvent queues an entry for a finished session
// Must not race with Stop; the frame loop exits before services stop
func (w *Writer) HandleEvent(ev event.GameEvent) {
	if w.closed.Load() {
		return
	}
	entry, ok := EntryFromEvent(ev)
	if !ok {
		return
	}
	select {
	case w.entries <- entry:
	default:
		log.Warn().Str("session", entry.SessionID.String()).Msg("Journal backlog full, entry dropped")
	}
}

func (w *Writer) run() {
	defer w.wg.Done()
	for entry := range w.entries {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := w.store.Record(ctx, entry); err != nil {
			log.Error().Err(err).Str("session", entry.SessionID.String()).Msg("Journal write failed")
		}
		cancel()
	}
}

// EntryFromEvent converts a shot or cancel notification
func EntryFromEvent(ev event.GameEvent) (Entry, bool) {
	switch ev.Type {
	case event.EventShotFired:
		payload, ok := ev.Payload.(*event.ShotFiredPayload)
		if !ok {
			return Entry{}, false
		}
		outcome := OutcomeFiredFull
		if payload.Kind == event.ShotFast {
			outcome = OutcomeFiredFast
		}
		return Entry{
			SessionID: payload.SessionID,
			Outcome:   outcome,
			Hold:      payload.Held,
			Cost:      payload.Cost,
		}, true

	case event.EventChargeCancelled:
		payload, ok := ev.Payload.(*event.ChargeCancelledPayload)
		if !ok {
			return Entry{}, false
		}
		return Entry{
			SessionID: payload.SessionID,
			Outcome:   OutcomeCancelled,
			Reason:    payload.Reason,
			Hold:      payload.Held,
		}, true
	}
	return Entry{}, false
}
