package analysis

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ordinalRe strips day ordinals ("30th" -> "30") only when the suffix
// directly follows a digit, so month names like "August" survive.
var ordinalRe = regexp.MustCompile(`(\d+)(st|nd|rd|th)`)

// dateLayouts are tried in order against both the ordinal-stripped and the
// original input. The order is deliberate: ISO first, then the
// day-month-year separators the extraction pipeline actually emits.
var dateLayouts = []string{
	"2006-01-02",
	"2-1-2006",
	"2.1.2006",
	"2/1/2006",
	"2/1/06",
	"2006/1/2",
	"2 January, 2006",
	"January 2, 2006",
}

var (
	yearRe = regexp.MustCompile(`\b(20\d{2})\b`)
	dayRe  = regexp.MustCompile(`\b(0?[1-9]|[12][0-9]|3[01])\b`)
)

// monthNames is an ordered first-match substring table: full names before
// abbreviations so "march" is not consumed by "mar".
var monthNames = []struct {
	name  string
	month time.Month
}{
	{"january", time.January},
	{"february", time.February},
	{"march", time.March},
	{"april", time.April},
	{"may", time.May},
	{"june", time.June},
	{"july", time.July},
	{"august", time.August},
	{"september", time.September},
	{"october", time.October},
	{"november", time.November},
	{"december", time.December},
	{"jan", time.January},
	{"feb", time.February},
	{"mar", time.March},
	{"apr", time.April},
	{"jun", time.June},
	{"jul", time.July},
	{"aug", time.August},
	{"sep", time.September},
	{"sept", time.September},
	{"oct", time.October},
	{"nov", time.November},
	{"dec", time.December},
}

// NormalizeDate parses a free-text date into a calendar date. The boolean is
// false when nothing parseable was found or the candidate year lies more than
// one year in the future (a telltale extraction error). Absence is the only
// failure signal; NormalizeDate never panics on garbage input.
func NormalizeDate(s string) (time.Time, bool) {
	return normalizeDateAt(s, time.Now())
}

func normalizeDateAt(s string, now time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	stripped := ordinalRe.ReplaceAllString(s, "$1")

	for _, layout := range dateLayouts {
		for _, candidate := range []string{stripped, s} {
			d, err := time.Parse(layout, candidate)
			if err != nil {
				continue
			}
			// A structural match with an implausible year is an
			// extraction error, not an invitation to keep guessing.
			if d.Year() > now.Year()+1 {
				return time.Time{}, false
			}
			return d, true
		}
	}

	return extractVerboseDate(s, now)
}

// extractVerboseDate recovers a date from prose like
// "Thursday, this the 09 day of October, 2025." by hunting for the year,
// month name, and day token independently.
func extractVerboseDate(s string, now time.Time) (time.Time, bool) {
	clean := strings.ToLower(s)
	clean = ordinalRe.ReplaceAllString(clean, "$1")
	clean = strings.ReplaceAll(clean, "day of", "")
	clean = strings.ReplaceAll(clean, "on this", "")
	clean = strings.ReplaceAll(clean, ",", " ")
	clean = strings.ReplaceAll(clean, "  ", " ")

	yearMatch := yearRe.FindStringSubmatch(clean)
	if yearMatch == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(yearMatch[1])

	var month time.Month
	for _, m := range monthNames {
		if strings.Contains(clean, m.name) {
			month = m.month
			break
		}
	}
	if month == 0 {
		return time.Time{}, false
	}

	dayMatch := dayRe.FindStringSubmatch(clean)
	if dayMatch == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(dayMatch[1])

	if year > now.Year()+1 {
		return time.Time{}, false
	}

	// time.Date normalizes out-of-range days (Feb 31 -> Mar 3); an invalid
	// calendar day means no date, not a fabricated one.
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}
