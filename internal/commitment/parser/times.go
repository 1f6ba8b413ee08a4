package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeResult is the output of the time/date extractor. Absent fields stay
// nil/zero; absence is never an error.
type TimeResult struct {
	StartTime       *time.Time
	EndTime         *time.Time
	DurationMinutes int // 0 when no duration phrase matched
}

// DurationPattern is one entry in the ordered duration pattern table.
// Patterns are attempted in declaration order; the first match wins.
type DurationPattern struct {
	Re      *regexp.Regexp
	ToMins  int // multiplier applied to the captured number
	Example string
}

// DurationPatterns is the ordered duration pattern table, exposed as data so
// tests can enumerate cases.
var DurationPatterns = []DurationPattern{
	{regexp.MustCompile(`(?i)\bfor\s+(\d+)\s+hours?\b`), 60, "for 2 hours"},
	{regexp.MustCompile(`(?i)\bfor\s+(\d+)\s+(?:minutes?|mins?)\b`), 1, "for 45 minutes"},
	{regexp.MustCompile(`(?i)\b(\d+)\s+hours?\s+(?:long|duration)\b`), 60, "3 hours long"},
}

// ClockPattern is one entry in the ordered clock time pattern table.
type ClockPattern struct {
	Re         *regexp.Regexp
	HasMinutes bool
	Example    string
}

// ClockPatterns is the ordered clock time pattern table. "at H:MM am/pm"
// binds tighter than a bare "H am/pm"; the first match wins, not the longest.
var ClockPatterns = []ClockPattern{
	{regexp.MustCompile(`(?i)\bat\s+(\d{1,2}):(\d{2})\s*(am|pm)\b`), true, "at 9:30am"},
	{regexp.MustCompile(`(?i)\bat\s+(\d{1,2})\s*(am|pm)\b`), false, "at 3pm"},
	{regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})\s*(am|pm)\b`), true, "9:30am"},
	{regexp.MustCompile(`(?i)\b(\d{1,2})\s*(am|pm)\b`), false, "3pm"},
}

// ExtractTime scans text for a duration phrase and a clock time, resolving
// the date part against the reference now. A clock time is required for a
// start time: date-only input yields no StartTime. When both a duration and
// a start time resolve, EndTime = StartTime + duration.
func (p *Parser) ExtractTime(text string, now time.Time) TimeResult {
	var res TimeResult

	res.DurationMinutes = extractDuration(text)

	hour, minute, ok := extractClock(text)
	if !ok {
		return res
	}

	day, _ := p.dates.ResolveDate(text, now)
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
	res.StartTime = &start

	if res.DurationMinutes > 0 {
		end := start.Add(time.Duration(res.DurationMinutes) * time.Minute)
		res.EndTime = &end
	}

	return res
}

// extractDuration returns the duration in minutes, 0 if no pattern matched.
func extractDuration(text string) int {
	for _, p := range DurationPatterns {
		m := p.Re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return n * p.ToMins
	}
	return 0
}

// extractClock returns the 24h clock time of the first matching pattern.
func extractClock(text string) (hour, minute int, ok bool) {
	for _, p := range ClockPatterns {
		m := p.Re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		hour, _ = strconv.Atoi(m[1])
		meridiem := m[2]
		if p.HasMinutes {
			minute, _ = strconv.Atoi(m[2])
			meridiem = m[3]
		}
		if hour < 1 || hour > 12 || minute > 59 {
			continue
		}

		// 12-hour arithmetic: pm and hour != 12 adds 12; 12am is hour 0.
		switch strings.ToLower(meridiem) {
		case "pm":
			if hour != 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		}
		return hour, minute, true
	}
	return 0, 0, false
}
