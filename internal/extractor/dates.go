package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Recognized shapes: "YYYY-YYYY", "YYYY-present|current|ongoing" and a bare
// "YYYY". Richer textual forms ("Jan 2020 - Mar 2022") are intentionally not
// parsed; the human correction step downstream fills what the heuristics
// miss.
var (
	yearRangeRe = regexp.MustCompile(`(?i)^(\d{4})\s*[-–]\s*(\d{4}|present|current|ongoing)$`)
	bareYearRe  = regexp.MustCompile(`^(\d{4})$`)
)

const (
	minPlausibleYear = 1900
	maxPlausibleYear = 2100
)

// parseDateRange maps a candidate date-range string to a start date and an
// optional end date. A nil end with ok=true means the range is ongoing.
func parseDateRange(s string) (start time.Time, end *time.Time, ok bool) {
	s = strings.TrimSpace(s)

	if m := bareYearRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		if !plausibleYear(year) {
			return time.Time{}, nil, false
		}
		endDate := endOfYear(year)
		return startOfYear(year), &endDate, true
	}

	m := yearRangeRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, nil, false
	}

	fromYear, _ := strconv.Atoi(m[1])
	if !plausibleYear(fromYear) {
		return time.Time{}, nil, false
	}

	switch strings.ToLower(m[2]) {
	case "present", "current", "ongoing":
		return startOfYear(fromYear), nil, true
	default:
		toYear, _ := strconv.Atoi(m[2])
		if !plausibleYear(toYear) || toYear < fromYear {
			return time.Time{}, nil, false
		}
		endDate := endOfYear(toYear)
		return startOfYear(fromYear), &endDate, true
	}
}

func startOfYear(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func endOfYear(year int) time.Time {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

func plausibleYear(year int) bool {
	return year >= minPlausibleYear && year <= maxPlausibleYear
}
