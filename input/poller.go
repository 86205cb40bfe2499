package input

import (
	"github.com/gdamore/tcell/v2"
)

// EventSource yields terminal events, nil once the source is finalized
// tcell.Screen satisfies it
type EventSource interface {
	PollEvent() tcell.Event
}

// pollerBuffer bounds queued intents, excess intents other than quit are dropped
const pollerBuffer = 64

// StartPoller reads src on its own goroutine and forwards translated intents
// Quit is always delivered, waiting for room if needed. Other intents are dropped
// when the queue is full. The channel closes when src returns nil
func StartPoller(src EventSource, p Profile) <-chan Intent {
	ch := make(chan Intent, pollerBuffer)
	go func() {
		defer close(ch)
		for {
			ev := src.PollEvent()
			if ev == nil {
				return
			}
			intent := Translate(ev, p)
			if intent.Type == IntentNone {
				continue
			}
			if intent.Type == IntentQuit {
				ch <- intent
				continue
			}
			select {
			case ch <- intent:
			default:
			}
		}
	}()
	return ch
}
