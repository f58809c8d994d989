package dashboard

import (
	"time"

	"github.com/i474232898/home-dashboard/internal/poller"
	"github.com/i474232898/home-dashboard/internal/scheduler"
)

// view pairs a poller with the scheduled task that drives it. Its
// lifetime is the dashboard's: Close stops the timer and drops late results.
type view[T any] struct {
	poller *poller.Poller[T]
	sched  *scheduler.Scheduler
}

func newView[T any](name string, fetch poller.FetchFunc[T], interval time.Duration) view[T] {
	p := poller.New(name, fetch)
	return view[T]{
		poller: p,
		sched:  scheduler.New(name, p, interval),
	}
}

func (v view[T]) Start() error {
	return v.sched.Start()
}

func (v view[T]) Close() {
	v.sched.Stop()
	v.poller.Close()
}

// State returns the view's current poll state.
func (v view[T]) State() poller.State[T] {
	return v.poller.State()
}
