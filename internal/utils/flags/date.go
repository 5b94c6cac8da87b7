package flags

import (
	"fmt"
	"time"
)

const (
	dateFormatSecondsTZ = "2006-01-02T15:04:05Z0700"
	dateFormatSeconds   = "2006-01-02T15:04:05"
	dateFormatMinutesTZ = "2006-01-02T15:04Z07:00"
	dateFormatMinutes   = "2006-01-02T15:04"
	dateFormatDays      = "2006-01-02"
)

var dateFormats = []string{
	time.RFC3339Nano,
	dateFormatSecondsTZ,
	dateFormatSeconds,
	dateFormatMinutesTZ,
	dateFormatMinutes,
	dateFormatDays,
}

// ParseTime parses an RFC3339 timestamp
// Timestamps missing a zone or their time of day are accepted as UTC
func ParseTime(val string) (time.Time, error) {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, val); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date string: %s", val)
}
