package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	log "github.com/sirupsen/logrus"
)

// DefaultInterval is how often a dashboard view polls its endpoint.
const DefaultInterval = 5 * time.Minute

var errInvalidInterval = errors.New("scheduler: interval must be positive")

// Task is one polling consumer.
type Task interface {
	Poll(ctx context.Context)
	// Disabled is closed when the task wants no further ticks.
	Disabled() <-chan struct{}
}

// Scheduler owns the timer of a single Task. Each view gets its own; there
// is no process-wide timer.
type Scheduler struct {
	name      string
	scheduler *gocron.Scheduler
	task      Task
	interval  time.Duration

	done     chan struct{}
	stopOnce sync.Once
}

// New creates a new Scheduler for task.
func New(name string, task Task, interval time.Duration) *Scheduler {
	return &Scheduler{
		name:      name,
		scheduler: gocron.NewScheduler(time.UTC),
		task:      task,
		interval:  interval,
		done:      make(chan struct{}),
	}
}

// Start runs the task immediately and then every interval, measured from
// the start rather than from the end of the previous run. Runs may overlap.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		return errInvalidInterval
	}

	_, err := s.scheduler.Every(s.interval).StartImmediately().Do(func() {
		s.task.Poll(context.Background())
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	log.WithFields(log.Fields{"view": s.name, "interval": s.interval.String()}).Info("scheduler: polling started")

	go func() {
		select {
		case <-s.task.Disabled():
			log.WithFields(log.Fields{"view": s.name}).Info("scheduler: task disabled; stopping timer")
			s.stopTimer()
		case <-s.done:
		}
	}()
	return nil
}

// Stop cancels future ticks. Runs already in progress are left to finish.
func (s *Scheduler) Stop() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	s.stopTimer()
}

func (s *Scheduler) stopTimer() {
	s.stopOnce.Do(func() {
		s.scheduler.Stop()
	})
}
