package dashboard

import (
	"context"
	"time"

	"github.com/i474232898/home-dashboard/internal/poller"
	"github.com/i474232898/home-dashboard/internal/transit"
)

// TransitView polls /api/tube and keeps only disrupted lines.
type TransitView struct {
	view[[]transit.LineStatus]
}

// TransitRow is one rendered disrupted line.
type TransitRow struct {
	transit.LineStatus
	Colour string
}

func NewTransitView(c *Client, interval time.Duration) *TransitView {
	fetch := func(ctx context.Context) ([]transit.LineStatus, error) {
		var lines []transit.Line
		if err := c.getJSON(ctx, "/api/tube", &lines); err != nil {
			return nil, err
		}
		return transit.DisruptedLines(lines)
	}
	return &TransitView{view: newView("transit", fetch, interval)}
}

// Rows is empty unless the view is Ready with at least one disrupted line.
func (v *TransitView) Rows() []TransitRow {
	st := v.State()
	if st.Phase != poller.Ready || st.Data == nil || len(*st.Data) == 0 {
		return nil
	}
	rows := make([]TransitRow, 0, len(*st.Data))
	for _, line := range *st.Data {
		rows = append(rows, TransitRow{LineStatus: line, Colour: LineColour(line.Name)})
	}
	return rows
}
