package services

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDaysUntilExpiryPastDate(t *testing.T) {
	t.Parallel()
	if got := DaysUntilExpiry(date("2024-01-08"), date("2024-01-10")); got != -2 {
		t.Fatalf("expected -2 days, got %d", got)
	}
}

func TestDaysUntilExpirySameDay(t *testing.T) {
	t.Parallel()
	if got := DaysUntilExpiry(date("2024-01-10"), date("2024-01-10")); got != 0 {
		t.Fatalf("expected 0 days, got %d", got)
	}
}

func TestDaysUntilExpiryIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()
	expiry := time.Date(2024, 1, 13, 23, 59, 0, 0, time.UTC)
	today := time.Date(2024, 1, 10, 1, 0, 0, 0, time.UTC)
	if got := DaysUntilExpiry(expiry, today); got != 3 {
		t.Fatalf("expected 3 days, got %d", got)
	}
}

func TestClassifyExpiryBoundaries(t *testing.T) {
	t.Parallel()
	if b := ClassifyExpiry(-2, 3); b != BucketExpired {
		t.Fatalf("expected expired, got %s", b)
	}
	if b := ClassifyExpiry(0, 3); b != BucketExpiring {
		t.Fatalf("expected expiring at day 0, got %s", b)
	}
	if b := ClassifyExpiry(3, 3); b != BucketExpiring {
		t.Fatalf("expected expiring at the threshold, got %s", b)
	}
	if b := ClassifyExpiry(4, 3); b != BucketFresh {
		t.Fatalf("expected fresh past the threshold, got %s", b)
	}
}

func TestExpiryLabels(t *testing.T) {
	t.Parallel()
	cases := map[int]string{
		-1: "Expired",
		0:  "Expires today",
		1:  "1 day remaining",
		5:  "5 days remaining",
	}
	for days, want := range cases {
		if got := ExpiryLabel(days); got != want {
			t.Fatalf("label for %d days: expected %q, got %q", days, want, got)
		}
	}
}
