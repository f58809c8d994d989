package transit

import "context"

// SeverityGoodService is the provider's severity code for nominal service.
const SeverityGoodService = 10

// Line is one line object as returned by the provider.
type Line struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	ModeName     string   `json:"modeName,omitempty"`
	LineStatuses []Status `json:"lineStatuses"`
}

// Status is one entry of a line's lineStatuses array.
type Status struct {
	StatusSeverity            int    `json:"statusSeverity"`
	StatusSeverityDescription string `json:"statusSeverityDescription"`
	Reason                    string `json:"reason,omitempty"`
}

// LineStatus is the display model for a disrupted line.
type LineStatus struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Provider abstracts the transit-status source.
type Provider interface {
	Configured() bool
	LineStatuses(ctx context.Context) ([]byte, error)
}
