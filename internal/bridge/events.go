package bridge

import (
	"github.com/rs/zerolog"
)

// Channel is the host-to-UI event carrying activated menu item ids.
const Channel = "back-to-front"

// EventBridge broadcasts menu activations to every UI subscriber.
type EventBridge struct {
	rt    Runtime
	gate  Gate
	log   zerolog.Logger
	fatal func(error)
}

// NewEventBridge returns a bridge emitting through rt. A nil fatal defaults
// to logging at fatal level.
func NewEventBridge(rt Runtime, gate Gate, log zerolog.Logger, fatal func(error)) *EventBridge {
	if fatal == nil {
		fatal = func(err error) {
			log.Fatal().Err(err).Msg("fatal bridge error")
		}
	}
	return &EventBridge{rt: rt, gate: gate, log: log, fatal: fatal}
}

// Activate emits id on Channel. The payload is the id and nothing else.
// Activations outside the running state are dropped.
func (b *EventBridge) Activate(id string) {
	if b.gate != nil && !b.gate.Running() {
		b.log.Debug().Str("id", id).Msg("menu activation dropped, host not running")
		return
	}
	if err := b.rt.EventsEmit(Channel, id); err != nil {
		b.fatal(&BridgeDeliveryError{ID: id, Err: err})
		return
	}
	b.log.Debug().Str("id", id).Msg("menu activation delivered")
}
