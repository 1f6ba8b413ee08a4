package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves date words in free text to absolute dates.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Kolkata"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Weekdays maps lowercase weekday names to time.Weekday. Exposed as data so
// tests can enumerate cases.
var Weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var numericDateRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})\b`)

// ResolveDate scans text for a date phrase and resolves it against baseTime.
// Attempts in order: "today", "tomorrow", "next week", a weekday name, an
// explicit MM/DD date. The returned time is the start of the resolved day in
// the parser's timezone. The boolean reports whether an explicit date phrase
// matched; when none does, the reference date is returned (matched == false).
func (p *Parser) ResolveDate(text string, baseTime time.Time) (time.Time, bool) {
	text = strings.ToLower(text)

	switch {
	case strings.Contains(text, "today"):
		return p.startOfDay(baseTime), true
	case strings.Contains(text, "tomorrow"):
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), true
	case strings.Contains(text, "next week"):
		return p.startOfDay(baseTime.AddDate(0, 0, 7)), true
	}

	if d, ok := p.resolveWeekday(text, baseTime); ok {
		return d, true
	}

	if d, ok := p.resolveNumericDate(text, baseTime); ok {
		return d, true
	}

	return p.startOfDay(baseTime), false
}

// resolveWeekday resolves the first weekday name found in text to its next
// occurrence. A named weekday always resolves forward: when the computed
// delta is zero or negative it rolls a full week ahead, with or without a
// "next" qualifier. "Monday" spoken on a Monday therefore means next Monday.
func (p *Parser) resolveWeekday(text string, baseTime time.Time) (time.Time, bool) {
	base := baseTime.In(p.location)

	name, target, ok := firstWeekday(text)
	if !ok {
		return time.Time{}, false
	}

	daysUntil := int(target - base.Weekday())
	if strings.Contains(text, "next "+name) {
		if daysUntil <= 0 {
			daysUntil += 7
		}
	} else {
		if daysUntil <= 0 {
			daysUntil += 7
		}
	}

	return p.startOfDay(base.AddDate(0, 0, daysUntil)), true
}

// resolveNumericDate handles explicit "MM/DD" dates in the reference year,
// rolling to the next year when the date already passed.
func (p *Parser) resolveNumericDate(text string, baseTime time.Time) (time.Time, bool) {
	matches := numericDateRe.FindStringSubmatch(text)
	if len(matches) != 3 {
		return time.Time{}, false
	}

	month, _ := strconv.Atoi(matches[1])
	day, _ := strconv.Atoi(matches[2])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	base := baseTime.In(p.location)
	resolved := time.Date(base.Year(), time.Month(month), day, 0, 0, 0, 0, p.location)
	if resolved.Before(p.startOfDay(base)) {
		resolved = resolved.AddDate(1, 0, 0)
	}
	return resolved, true
}

// firstWeekday returns the earliest weekday name occurring in text.
func firstWeekday(text string) (string, time.Weekday, bool) {
	bestIdx := -1
	var bestName string
	var bestDay time.Weekday
	for name, day := range Weekdays {
		idx := strings.Index(text, name)
		if idx < 0 {
			continue
		}
		if bestIdx == -1 || idx < bestIdx {
			bestIdx = idx
			bestName = name
			bestDay = day
		}
	}
	if bestIdx == -1 {
		return "", 0, false
	}
	return bestName, bestDay, true
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// StartOfDay is the exported form of startOfDay for callers that need to
// anchor cursors to a calendar day.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	return p.startOfDay(t)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
