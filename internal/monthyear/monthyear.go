// Package monthyear parses the "Month - Year" tokens clients use to
// identify budget periods.
package monthyear

import (
	"strconv"
	"strings"
	"time"

	apperrors "budgety/internal/errors"
)

// Periods are anchored at midnight in a fixed UTC+1 zone, year-round.
// Existing clients were built against these epoch values, e.g.
// "January - 2010" -> 1262300400.
var periodZone = time.FixedZone("UTC+1", 3600)

var monthsByName = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

var monthsByPrefix = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

// Parse converts a "Month - Year" token into Unix seconds at midnight on
// the first of that month. Whitespace around the hyphen is tolerated. The
// month is matched by full name first, then by its first three letters;
// tokens that resolve to no month at all fall back to January. An
// unparseable year fails with INVALID_DATE.
func Parse(monthYear string) (int64, error) {
	monthToken, yearToken, found := strings.Cut(monthYear, "-")
	if !found {
		return 0, apperrors.ErrInvalidDate
	}

	year, err := strconv.Atoi(strings.TrimSpace(yearToken))
	if err != nil {
		return 0, apperrors.ErrInvalidDate
	}

	month := resolveMonth(strings.TrimSpace(monthToken))
	return time.Date(year, month, 1, 0, 0, 0, 0, periodZone).Unix(), nil
}

func resolveMonth(token string) time.Month {
	name := strings.ToLower(token)
	if m, ok := monthsByName[name]; ok {
		return m
	}
	if len(name) >= 3 {
		if m, ok := monthsByPrefix[name[:3]]; ok {
			return m
		}
	}
	return time.January
}
