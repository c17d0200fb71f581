package ingest

import (
	"strconv"
	"strings"
)

// ParseTimestamp converts a heterogeneous time representation to seconds.
// Accepted forms: bare numeric seconds ("." or "," decimal separator),
// "MM:SS" and "HH:MM:SS". Minutes and seconds must be < 60; the leading
// component is unbounded, so "90:00" means 90 minutes. Returns false for
// empty, negative or otherwise unparsable input.
func ParseTimestamp(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	if !strings.Contains(s, ":") {
		seconds, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
		if err != nil || seconds < 0 {
			return 0, false
		}
		return seconds, true
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	total := 0.0
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(part), ",", "."), 64)
		if err != nil || v < 0 {
			return 0, false
		}
		// Only the leftmost component may reach 60
		if i > 0 && v >= 60 {
			return 0, false
		}
		total = total*60 + v
	}
	return total, true
}
