package dashboard

import (
	"errors"
	"time"

	"github.com/i474232898/home-dashboard/internal/poller"
	"github.com/i474232898/home-dashboard/internal/transit"
	"github.com/i474232898/home-dashboard/internal/weather"
)

// Dashboard owns the three polling views. Their timers live exactly as long
// as the Dashboard: Start arms them, Close cancels them.
type Dashboard struct {
	Weather *WeatherView
	Rain    *RainView
	Transit *TransitView

	location *time.Location
}

// New builds the views against client. No polling happens until Start.
func New(client *Client, interval time.Duration, loc *time.Location) *Dashboard {
	if loc == nil {
		loc = time.Local
	}
	return &Dashboard{
		Weather:  NewWeatherView(client, interval, loc),
		Rain:     NewRainView(client, interval),
		Transit:  NewTransitView(client, interval),
		location: loc,
	}
}

// Start arms every view's timer; each view polls once right away.
func (d *Dashboard) Start() error {
	var errs []error
	for _, start := range []func() error{d.Weather.Start, d.Rain.Start, d.Transit.Start} {
		if err := start(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close tears down every view.
func (d *Dashboard) Close() {
	d.Weather.Close()
	d.Rain.Close()
	d.Transit.Close()
}

// Snapshot is the JSON view of all three poll states.
type Snapshot struct {
	Weather poller.State[WeatherPanel]         `json:"weather"`
	Rain    poller.State[[]weather.RainPoint]  `json:"rain"`
	Transit poller.State[[]transit.LineStatus] `json:"transit"`
}

// Snapshot returns the current state of every view.
func (d *Dashboard) Snapshot() Snapshot {
	return Snapshot{
		Weather: d.Weather.State(),
		Rain:    d.Rain.State(),
		Transit: d.Transit.State(),
	}
}
