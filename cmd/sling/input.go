package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/sling/event"
	"github.com/lixenwraith/sling/parameter"
)

// inputMapper turns terminal events into game events
// Mouse reports carry button state, not transitions: edges are derived against the last report
type inputMapper struct {
	buttons tcell.ButtonMask
}

// Map returns the game events for ev; resize is true when the screen needs a sync
func (m *inputMapper) Map(ev tcell.Event) (events []event.GameEvent, resize bool) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		was := m.buttons&tcell.Button1 != 0
		m.buttons = ev.Buttons()
		is := m.buttons&tcell.Button1 != 0
		switch {
		case is && !was:
			events = append(events, event.GameEvent{Type: event.EventPress})
		case !is && was:
			events = append(events, event.GameEvent{Type: event.EventRelease})
		}

	case *tcell.EventKey:
		events = mapKey(ev.Key(), ev.Rune())

	case *tcell.EventResize:
		resize = true
	}
	return events, resize
}

// mapKey binds the demo keys: s sunlight, d drain, p pause, q or Esc quit
func mapKey(key tcell.Key, r rune) []event.GameEvent {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return []event.GameEvent{{Type: event.EventQuit}}
	}
	if key != tcell.KeyRune {
		return nil
	}

	switch r {
	case 'q':
		return []event.GameEvent{{Type: event.EventQuit}}
	case 's':
		return []event.GameEvent{{Type: event.EventSunlightToggle}}
	case 'd':
		return []event.GameEvent{{
			Type:    event.EventEnergyDrain,
			Payload: &event.EnergyDrainPayload{Amount: parameter.EnergyDebugDrain},
		}}
	case 'p':
		return []event.GameEvent{{Type: event.EventPauseToggle}}
	}
	return nil
}

// pollInput pushes translated terminal events until ctx ends or the screen closes
// PollEvent blocks; the caller wakes it with an interrupt on shutdown
func pollInput(ctx context.Context, screen tcell.Screen, out event.Publisher) error {
	// Panic recovery for input polling goroutine to ensure terminal cleanup
	defer func() {
		if r := recover(); r != nil {
			crash(screen, "INPUT POLLER", r)
		}
	}()

	var mapper inputMapper
	for {
		ev := screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		events, resize := mapper.Map(ev)
		if resize {
			screen.Sync()
		}
		for _, ge := range events {
			out.Push(ge)
		}
	}
}

// crash restores the terminal and exits with the stack on stderr
func crash(screen tcell.Screen, what string, r any) {
	screen.Fini()
	log.Error().Str("where", what).Interface("panic", r).Msg("Crashed")
	// Use \r\n for raw mode compatibility to avoid zig-zag output
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", what, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}
