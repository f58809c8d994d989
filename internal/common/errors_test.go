package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindStatusCode(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindConfigurationMissing, http.StatusServiceUnavailable},
		{KindUpstreamRateLimited, http.StatusServiceUnavailable},
		{KindUpstream, http.StatusInternalServerError},
		{KindValidation, http.StatusInternalServerError},
		{KindTransportOrParse, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.kind.StatusCode(); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.kind, tc.want, got)
		}
	}
}

func TestRateLimitedIsDistinctFromMissingConfiguration(t *testing.T) {
	if KindUpstreamRateLimited == KindConfigurationMissing {
		t.Fatal("rate limiting and missing configuration must stay separate kinds")
	}
	if KindUpstreamRateLimited.String() == KindConfigurationMissing.String() {
		t.Fatal("kinds must have distinct names")
	}
}

func TestKindOfWrappedError(t *testing.T) {
	base := NewError(KindValidation, "bad payload", errors.New("missing list"))
	wrapped := fmt.Errorf("rain: %w", base)

	if got := KindOf(wrapped); got != KindValidation {
		t.Fatalf("expected %s, got %s", KindValidation, got)
	}
	if got := KindOf(errors.New("plain")); got != KindTransportOrParse {
		t.Fatalf("expected default kind, got %s", got)
	}
}

func TestWithDetail(t *testing.T) {
	e := NewError(KindUpstream, "failed", errors.New("boom")).WithDetail()
	if e.Detail != "boom" {
		t.Fatalf("expected detail %q, got %q", "boom", e.Detail)
	}
	if e.Error() != "failed: boom" {
		t.Fatalf("unexpected error text %q", e.Error())
	}
}

func TestUpstreamStatusError(t *testing.T) {
	e := &UpstreamStatusError{Provider: "transit provider", StatusCode: http.StatusTooManyRequests}
	if !e.RateLimited() {
		t.Fatal("429 should be rate limited")
	}
	if e.Error() != "transit provider returned 429: Too Many Requests" {
		t.Fatalf("unexpected message %q", e.Error())
	}
}

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{19.5, 20},
		{19.49, 19},
		{0.42 * 100, 42},
		{0.005 * 100, 1},
		{-0.5, 0},
		{-1.5, -1},
		{-2.6, -3},
	}
	for _, tc := range cases {
		if got := RoundHalfUp(tc.in); got != tc.want {
			t.Errorf("RoundHalfUp(%v): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}
