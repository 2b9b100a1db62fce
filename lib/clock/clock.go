package clock

import (
	"time"
)

const (
	timestampLayout = "2006-01-02T15:04:05Z"
	// DateLayout is the calendar date format Siigo expects, no time or zone
	DateLayout = "2006-01-02"
)

func Now() string {
	return time.Now().UTC().Format(timestampLayout)
}

// Date formats t as YYYY-MM-DD in its own location, discarding time of day
func Date(t time.Time) string {
	return t.Format(DateLayout)
}
