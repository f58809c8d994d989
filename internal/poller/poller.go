// Package poller holds the state machine shared by every dashboard view:
// Loading until the first answer, then Ready or Error on each tick, and
// Disabled for good once the endpoint reports it is not configured.
package poller

import (
	"context"
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"
)

// ErrDisabled is returned by a FetchFunc when the endpoint answered 503.
var ErrDisabled = errors.New("service not configured")

// Phase is the lifecycle position of a poller.
type Phase int

const (
	Loading Phase = iota
	Disabled
	Error
	Ready
)

func (p Phase) String() string {
	switch p {
	case Disabled:
		return "disabled"
	case Error:
		return "error"
	case Ready:
		return "ready"
	default:
		return "loading"
	}
}

// MarshalText renders the phase by name in JSON.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// State is a point-in-time copy of a poller. Data keeps the last good value
// across Error transitions.
type State[T any] struct {
	Phase        Phase  `json:"phase"`
	Data         *T     `json:"data"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// FetchFunc performs one request and normalizes its result.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Poller applies fetch results to a State.
type Poller[T any] struct {
	name  string
	fetch FetchFunc[T]

	mu      sync.Mutex
	state   State[T]
	issued  uint64 // generation of the latest fetch started
	applied uint64 // generation of the latest fetch applied
	closed  bool

	disabled     chan struct{}
	disabledOnce sync.Once
}

// New creates a Poller in the Loading phase.
func New[T any](name string, fetch FetchFunc[T]) *Poller[T] {
	return &Poller[T]{
		name:     name,
		fetch:    fetch,
		state:    State[T]{Phase: Loading},
		disabled: make(chan struct{}),
	}
}

// Poll runs one tick. It is safe to call concurrently; a result that
// resolves after a newer one was applied is discarded.
func (p *Poller[T]) Poll(ctx context.Context) {
	p.mu.Lock()
	if p.closed || p.state.Phase == Disabled {
		p.mu.Unlock()
		return
	}
	p.issued++
	gen := p.issued
	p.mu.Unlock()

	data, err := p.fetch(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || p.state.Phase == Disabled || gen < p.applied {
		return
	}
	p.applied = gen

	switch {
	case errors.Is(err, ErrDisabled):
		log.WithFields(log.Fields{"view": p.name}).Info("poller: endpoint not configured; polling disabled")
		p.state.Phase = Disabled
		p.state.ErrorMessage = ""
		p.disabledOnce.Do(func() { close(p.disabled) })
	case err != nil:
		log.WithFields(log.Fields{"view": p.name, "error": err}).Warn("poller: fetch failed")
		p.state.Phase = Error
		p.state.ErrorMessage = err.Error()
	default:
		p.state.Phase = Ready
		p.state.Data = &data
		p.state.ErrorMessage = ""
	}
}

// State returns a copy of the current state.
func (p *Poller[T]) State() State[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Disabled is closed once the poller reaches the Disabled phase.
func (p *Poller[T]) Disabled() <-chan struct{} {
	return p.disabled
}

// Close discards the results of any fetch still in flight and stops
// further ticks from doing anything.
func (p *Poller[T]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}
