package dashboard

import (
	"context"
	"time"

	"github.com/i474232898/home-dashboard/internal/poller"
	"github.com/i474232898/home-dashboard/internal/weather"
)

// RainView polls /api/weather/rain.
type RainView struct {
	view[[]weather.RainPoint]
}

func NewRainView(c *Client, interval time.Duration) *RainView {
	fetch := func(ctx context.Context) ([]weather.RainPoint, error) {
		var points []weather.RainPoint
		if err := c.getJSON(ctx, "/api/weather/rain", &points); err != nil {
			return nil, err
		}
		return points, nil
	}
	return &RainView{view: newView("rain", fetch, interval)}
}

// Bars is empty unless the view is Ready with at least one point.
func (v *RainView) Bars() []weather.RainPoint {
	st := v.State()
	if st.Phase != poller.Ready || st.Data == nil || len(*st.Data) == 0 {
		return nil
	}
	return *st.Data
}
