package snapshot

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	tests := []struct {
		name     string
		time     time.Time
		expected string
	}{
		{
			name:     "utc time",
			time:     time.Date(2024, 3, 7, 4, 5, 9, 0, time.UTC),
			expected: "@GMT-2024.03.07-04.05.09",
		},
		{
			name:     "local time is converted to utc",
			time:     time.Date(2024, 1, 1, 1, 30, 0, 0, time.FixedZone("CET", 3600)),
			expected: "@GMT-2024.01.01-00.30.00",
		},
		{
			name:     "year boundary",
			time:     time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
			expected: "@GMT-2023.12.31-23.59.59",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Name(tt.time))
		})
	}
}

func TestIsName(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"@GMT-2024.03.07-04.05.09", true},
		{"@GMT-2024.3.7-4.5.9", false},
		{"@GMT-2024.03.07-04.05.09.partial", false},
		{"GMT-2024.03.07-04.05.09", false},
		{"lost+found", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsName(tt.name))
		})
	}
}

func TestParse(t *testing.T) {
	ts, err := Parse("@GMT-2024.03.07-04.05.09")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 7, 4, 5, 9, 0, time.UTC), ts)

	_, err = Parse("@GMT-2024.13.07-04.05.09")
	assert.Error(t, err, "month 13 matches the pattern but is not a time")

	_, err = Parse("snapshot")
	assert.Error(t, err)
}

func TestName_LexicographicOrderIsChronological(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	start := time.Date(2019, 11, 1, 0, 0, 0, 0, time.UTC)

	times := make([]time.Time, 500)
	for i := range times {
		// spread over roughly three years so several year boundaries are crossed
		times[i] = start.Add(time.Duration(rng.Int63n(int64(3 * 365 * 24 * time.Hour)))).Truncate(time.Second)
	}

	names := make([]string, len(times))
	for i, ts := range times {
		names[i] = Name(ts)
	}

	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	sort.Strings(names)

	for i := range times {
		assert.Equal(t, Name(times[i]), names[i])
	}
}
