package weather

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/i474232898/home-dashboard/internal/common"
)

type fakeProvider struct {
	configured  bool
	current     []byte
	forecast    []byte
	currentErr  error
	forecastErr error
	calls       atomic.Int32
}

func (f *fakeProvider) Configured() bool { return f.configured }

func (f *fakeProvider) Current(context.Context) ([]byte, error) {
	f.calls.Add(1)
	return f.current, f.currentErr
}

func (f *fakeProvider) Forecast(context.Context) ([]byte, error) {
	f.calls.Add(1)
	return f.forecast, f.forecastErr
}

const (
	goodCurrent  = `{"main":{"temp":3.2},"weather":[{"description":"mist","icon":"50n"}]}`
	goodForecast = `{"list":[{"dt":1709532000,"pop":0.3}]}`
)

func TestSnapshotPassesPayloadsThrough(t *testing.T) {
	p := &fakeProvider{configured: true, current: []byte(goodCurrent), forecast: []byte(goodForecast)}
	snap, err := NewService(p, time.UTC).Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(snap.Current) != goodCurrent || string(snap.Forecast) != goodForecast {
		t.Fatalf("payloads were modified: %s / %s", snap.Current, snap.Forecast)
	}
}

func TestSnapshotAllOrNothing(t *testing.T) {
	cases := map[string]*fakeProvider{
		"forecast transport": {current: []byte(goodCurrent), forecastErr: errors.New("dial tcp: refused")},
		"current upstream":   {currentErr: &common.UpstreamStatusError{StatusCode: 401}, forecast: []byte(goodForecast)},
		"forecast no list":   {current: []byte(goodCurrent), forecast: []byte(`{"cod":"200"}`)},
		"current no main":    {current: []byte(`{"weather":[]}`), forecast: []byte(goodForecast)},
		"current not json":   {current: []byte(`<html>`), forecast: []byte(goodForecast)},
	}
	for name, p := range cases {
		snap, err := NewService(p, time.UTC).Snapshot(context.Background())
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		if snap.Current != nil {
			t.Fatalf("%s: partial data returned", name)
		}
		var appErr *common.Error
		if !errors.As(err, &appErr) || appErr.StatusCode() != 500 {
			t.Fatalf("%s: expected a 500 error, got %v", name, err)
		}
		if appErr.Detail != "" {
			t.Fatalf("%s: weather errors carry no detail", name)
		}
	}
}

func TestRainOutlookNotConfigured(t *testing.T) {
	p := &fakeProvider{}
	_, err := NewService(p, time.UTC).RainOutlook(context.Background())
	if common.KindOf(err) != common.KindConfigurationMissing {
		t.Fatalf("expected configuration missing, got %v", err)
	}
	if p.calls.Load() != 0 {
		t.Fatal("no outbound call expected")
	}
}

func TestRainOutlookUpstreamError(t *testing.T) {
	p := &fakeProvider{configured: true, forecastErr: &common.UpstreamStatusError{Provider: "weather provider", StatusCode: 429}}
	_, err := NewService(p, time.UTC).RainOutlook(context.Background())
	// only the transit endpoint treats 429 as 503
	if common.KindOf(err) != common.KindUpstream {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestRainOutlookMissingList(t *testing.T) {
	p := &fakeProvider{configured: true, forecast: []byte(`{}`)}
	_, err := NewService(p, time.UTC).RainOutlook(context.Background())
	if common.KindOf(err) != common.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRainOutlookSuccess(t *testing.T) {
	p := &fakeProvider{configured: true, forecast: []byte(goodForecast)}
	points, err := NewService(p, time.UTC).RainOutlook(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 1 || points[0].Chance != 30 || points[0].Hour != "6 AM" {
		t.Fatalf("unexpected points %+v", points)
	}
}
