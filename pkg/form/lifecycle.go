package form

import (
	"errors"
	"fmt"
	"sync"
)

// Phase is a step of the submission lifecycle.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseSubmitted Phase = "submitted"
	PhaseAccepted  Phase = "accepted"
	PhaseRejected  Phase = "rejected"
)

type trigger string

const (
	triggerSubmit trigger = "submit"
	triggerAccept trigger = "accept"
	triggerReject trigger = "reject"
	triggerSettle trigger = "settle"
)

// ErrNoTransition is returned when a trigger is not allowed in the current phase.
var ErrNoTransition = errors.New("no transition available")

// lifecycle is a fixed transition table:
// idle -> submitted -> accepted|rejected -> idle.
type lifecycle struct {
	mu          sync.RWMutex
	current     Phase
	transitions map[Phase]map[trigger]Phase
}

func newLifecycle() *lifecycle {
	return &lifecycle{
		current: PhaseIdle,
		transitions: map[Phase]map[trigger]Phase{
			PhaseIdle:      {triggerSubmit: PhaseSubmitted},
			PhaseSubmitted: {triggerAccept: PhaseAccepted, triggerReject: PhaseRejected},
			PhaseAccepted:  {triggerSettle: PhaseIdle},
			PhaseRejected:  {triggerSettle: PhaseIdle},
		},
	}
}

func (l *lifecycle) Current() Phase {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

func (l *lifecycle) fire(t trigger) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next, ok := l.transitions[l.current][t]
	if !ok {
		return fmt.Errorf("%w: from %q on %q", ErrNoTransition, l.current, t)
	}
	l.current = next
	return nil
}

func (l *lifecycle) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.current = PhaseIdle
}
