package extractor

import (
	"strings"
	"time"
)

// dateLayouts are tried in order when parsing captured date strings.
// US statements put the month first, so MM/DD layouts come before ISO and
// month-name forms. Order matters for ambiguous inputs and must stay stable.
var dateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"1-2-2006",
	"01/02/06",
	"1/2/06",
	"01-02-06",
	"1-2-06",
	"2006-01-02",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
}

// parseDate parses a date string captured from statement text.
// Returns false when no known layout applies.
func parseDate(s string) (time.Time, bool) {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
