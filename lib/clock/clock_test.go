package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siigosync/lib/clock"
)

func TestDate(t *testing.T) {
	bogota := time.FixedZone("COT", -5*3600)
	cases := map[string]time.Time{
		"2024-03-09": time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		"2024-12-31": time.Date(2024, 12, 31, 23, 59, 59, 999, bogota),
		"0001-01-01": {},
	}
	for want, in := range cases {
		got := clock.Date(in)
		assert.Equal(t, want, got)
		assert.Len(t, got, 10)
	}
}

func TestNow(t *testing.T) {
	_, err := time.Parse("2006-01-02T15:04:05Z", clock.Now())
	require.NoError(t, err)
}
