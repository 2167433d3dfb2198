package expiration

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusExpired Status = "expired"
	StatusWarning Status = "warning"
	StatusOK      Status = "ok"
)

// Info is the display view of an expiration date relative to a reference
// day: a status bucket, human text, and the whole-day remainder.
type Info struct {
	Status   Status `json:"status"`
	Text     string `json:"text"`
	DaysLeft int    `json:"days_left"`
}

// Classify buckets an expiration date against today. Past dates are
// "Expired", today is the critical "Expires today", one or two days out is
// a warning, and anything further is fine. Pure and total: callers supply
// today so results are reproducible.
func Classify(expiration, today time.Time) Info {
	days := DaysUntil(expiration, today)

	switch {
	case days < 0:
		return Info{Status: StatusExpired, Text: "Expired", DaysLeft: days}
	case days == 0:
		return Info{Status: StatusExpired, Text: "Expires today", DaysLeft: 0}
	case days <= 2:
		return Info{Status: StatusWarning, Text: dayText(days), DaysLeft: days}
	default:
		return Info{Status: StatusOK, Text: dayText(days), DaysLeft: days}
	}
}

// DaysUntil returns the number of whole calendar days from today until
// expiration, negative once the date has passed. Time of day is ignored.
func DaysUntil(expiration, today time.Time) int {
	e := startOfDay(expiration)
	t := startOfDay(today)
	return int((e.Unix() - t.Unix()) / 86400)
}

// WithinWindow reports whether expiration falls inside [today, today+days]
// at date granularity. This is the notification view: already-expired
// items are outside the window even though Classify flags them expired.
func WithinWindow(expiration, today time.Time, days int) bool {
	d := DaysUntil(expiration, today)
	return d >= 0 && d <= days
}

func dayText(days int) string {
	if days == 1 {
		return "1 day left"
	}
	return fmt.Sprintf("%d days left", days)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
