package services

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Urgency buckets derived from days-until-expiry.
type ExpiryBucket string

const (
	BucketExpired  ExpiryBucket = "expired"
	BucketExpiring ExpiryBucket = "expiring"
	BucketFresh    ExpiryBucket = "fresh"
)

const DefaultExpiryWarnDays = 3

// ExpiryWarnDays reads the bucket threshold from EXPIRY_WARN_DAYS,
// falling back to the default. The single knob replaces the per-screen
// thresholds the mobile app used to carry.
func ExpiryWarnDays() int {
	if v := os.Getenv("EXPIRY_WARN_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return DefaultExpiryWarnDays
}

// truncateToDay strips the time component. All expiry arithmetic is
// calendar-date arithmetic.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysUntilExpiry returns the signed whole-day distance from today to the
// expiry date. Same-day expiry is 0, yesterday is -1.
func DaysUntilExpiry(expiry, today time.Time) int {
	e := truncateToDay(expiry)
	t := truncateToDay(today)
	return int(e.Sub(t).Hours() / 24)
}

// ClassifyExpiry buckets a day count: negative is expired, within the
// threshold (inclusive) is expiring, beyond it is fresh.
func ClassifyExpiry(days, warnDays int) ExpiryBucket {
	switch {
	case days < 0:
		return BucketExpired
	case days <= warnDays:
		return BucketExpiring
	default:
		return BucketFresh
	}
}

// ExpiryLabel renders a day count for display.
func ExpiryLabel(days int) string {
	switch {
	case days < 0:
		return "Expired"
	case days == 0:
		return "Expires today"
	case days == 1:
		return "1 day remaining"
	default:
		return fmt.Sprintf("%d days remaining", days)
	}
}
