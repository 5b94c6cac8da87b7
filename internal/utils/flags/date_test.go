package flags

import (
	"errors"
	"testing"
	"time"

	"github.com/usepylon/pylon-cli/internal/utils/test/assert"
)

func TestParseTime(t *testing.T) {
	for _, tc := range []struct {
		description string
		input       string
		expected    time.Time
	}{
		{"a UTC timestamp", "2024-01-01T00:00:00Z", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"a timestamp with fractional seconds", "2024-01-01T00:00:00.5Z", time.Date(2024, 1, 1, 0, 0, 0, 5e8, time.UTC)},
		{"a timestamp with an offset", "2024-01-01T02:00:00+02:00", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"a timestamp with a compact offset", "2024-01-01T02:00:00+0200", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"a timestamp without a zone", "2024-01-01T10:30:00", time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)},
		{"a timestamp at minutes", "2024-01-01T10:30", time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)},
		{"a date", "2024-01-31", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
	} {
		t.Run("should parse "+tc.description, func(t *testing.T) {
			parsed, err := ParseTime(tc.input)
			assert.Nil(t, err)
			assert.True(t, tc.expected.Equal(parsed), "expected %s to equal %s", parsed, tc.expected)
		})
	}

	t.Run("should fail to parse other strings", func(t *testing.T) {
		_, err := ParseTime("yesterday")
		assert.Equal(t, errors.New("unrecognized date string: yesterday"), err)
	})
}
