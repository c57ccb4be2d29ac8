package app

import "sync/atomic"

// State is the host lifecycle phase.
type State int32

const (
	StatePreInit State = iota
	StateRunning
	StateTerminating
)

func (s State) String() string {
	switch s {
	case StatePreInit:
		return "pre-init"
	case StateRunning:
		return "running"
	case StateTerminating:
		return "terminating"
	default:
		return "unknown"
	}
}

// lifecycle moves only forward: PreInit -> Running -> Terminating.
type lifecycle struct {
	v atomic.Int32
}

func (l *lifecycle) Load() State {
	return State(l.v.Load())
}

// advance moves to next if it is later than the current state.
func (l *lifecycle) advance(next State) bool {
	for {
		cur := l.v.Load()
		if State(cur) >= next {
			return false
		}
		if l.v.CompareAndSwap(cur, int32(next)) {
			return true
		}
	}
}
