package transit

import "fmt"

// DisruptedLines keeps the lines whose first status is not good service,
// preserving their order. The result is empty, never nil.
func DisruptedLines(lines []Line) ([]LineStatus, error) {
	disrupted := make([]LineStatus, 0)
	for _, line := range lines {
		if len(line.LineStatuses) == 0 {
			return nil, fmt.Errorf("line %q has no status entries", line.ID)
		}
		first := line.LineStatuses[0]
		if first.StatusSeverity == SeverityGoodService {
			continue
		}
		disrupted = append(disrupted, LineStatus{
			ID:     line.ID,
			Name:   line.Name,
			Status: first.StatusSeverityDescription,
			Reason: first.Reason,
		})
	}
	return disrupted, nil
}
