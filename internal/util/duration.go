// Package util contains small shared helpers with no domain dependencies.
package util

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ParseISODuration parses an ISO-8601 duration of the form PnDTnHnMnS into a
// time.Duration. Week/month/year designators are not supported; recipe times
// never use them.
func ParseISODuration(raw string) (time.Duration, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) < 2 || s[0] != 'P' {
		return 0, errors.Errorf("invalid ISO-8601 duration: %q", raw)
	}

	s = s[1:]
	var total time.Duration
	inTime := false
	numStart := -1

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= '0' && ch <= '9' || ch == '.' {
			if numStart < 0 {
				numStart = i
			}

			continue
		}

		if ch == 'T' {
			if numStart >= 0 {
				return 0, errors.Errorf("invalid ISO-8601 duration: %q", raw)
			}
			inTime = true

			continue
		}

		if numStart < 0 {
			return 0, errors.Errorf("invalid ISO-8601 duration: %q", raw)
		}

		value, err := strconv.ParseFloat(s[numStart:i], 64)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid ISO-8601 duration: %q", raw)
		}
		numStart = -1

		var unit time.Duration
		switch {
		case ch == 'D' && !inTime:
			unit = 24 * time.Hour
		case ch == 'H' && inTime:
			unit = time.Hour
		case ch == 'M' && inTime:
			unit = time.Minute
		case ch == 'S' && inTime:
			unit = time.Second
		default:
			return 0, errors.Errorf("unsupported designator %q in duration %q", string(ch), raw)
		}

		total += time.Duration(value * float64(unit))
	}

	if numStart >= 0 {
		return 0, errors.Errorf("invalid ISO-8601 duration: %q", raw)
	}

	return total, nil
}

// FormatISODuration renders a non-negative duration as an ISO-8601 duration
// string (hours/minutes/seconds). The zero duration renders as "PT0S".
func FormatISODuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d <= 0 {
		return "PT0S"
	}

	var b strings.Builder
	b.WriteString("PT")

	if h := int64(d / time.Hour); h > 0 {
		b.WriteString(strconv.FormatInt(h, 10))
		b.WriteByte('H')
		d -= time.Duration(h) * time.Hour
	}
	if m := int64(d / time.Minute); m > 0 {
		b.WriteString(strconv.FormatInt(m, 10))
		b.WriteByte('M')
		d -= time.Duration(m) * time.Minute
	}
	if s := int64(d / time.Second); s > 0 {
		b.WriteString(strconv.FormatInt(s, 10))
		b.WriteByte('S')
	}

	return b.String()
}
