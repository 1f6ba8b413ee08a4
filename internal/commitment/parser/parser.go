package parser

import (
	"time"

	"ai-life-planner/internal/model"
	"ai-life-planner/pkg/datemath"
)

// Confidence contributions. The score is a heuristic, not a probability;
// thresholds applied to it are product policy, configured by callers.
const (
	ConfidenceBase          = 0.30
	ConfidenceTitlePrimary  = 0.20
	ConfidenceTitleFallback = 0.10
	ConfidenceType          = 0.10
	ConfidenceLocation      = 0.10
	ConfidenceStartTime     = 0.20
	ConfidenceEndTime       = 0.10
)

// ParsedCommitment is the structured result of parsing one free-text phrase.
// Produced fresh per Parse call and never mutated afterwards.
type ParsedCommitment struct {
	Title           string
	Type            model.CommitmentType
	Location        string
	StartTime       *time.Time
	EndTime         *time.Time
	DurationMinutes int
	Confidence      float64
}

// Parser turns free-text commitment phrases into structured results. All
// methods are pure: the reference "now" is always passed in explicitly, so
// identical (text, now) inputs yield identical outputs.
type Parser struct {
	dates *datemath.Parser
}

// New creates a Parser that resolves date words with the given date parser.
func New(dates *datemath.Parser) *Parser {
	return &Parser{dates: dates}
}

// Parse extracts time, title, type and location from text relative to now
// and accumulates a confidence score, capped at 1.0.
func (p *Parser) Parse(text string, now time.Time) ParsedCommitment {
	fields := p.ExtractFields(text)
	times := p.ExtractTime(text, now)

	confidence := ConfidenceBase
	if fields.Title != "" {
		if fields.TitlePrimary {
			confidence += ConfidenceTitlePrimary
		} else {
			confidence += ConfidenceTitleFallback
		}
	}
	if fields.Type != "" {
		confidence += ConfidenceType
	}
	if fields.Location != "" {
		confidence += ConfidenceLocation
	}
	if times.StartTime != nil {
		confidence += ConfidenceStartTime
	}
	if times.EndTime != nil || times.DurationMinutes > 0 {
		confidence += ConfidenceEndTime
	}
	if confidence > 1.0 {
		confidence = 1.0
	}

	return ParsedCommitment{
		Title:           fields.Title,
		Type:            fields.Type,
		Location:        fields.Location,
		StartTime:       times.StartTime,
		EndTime:         times.EndTime,
		DurationMinutes: times.DurationMinutes,
		Confidence:      confidence,
	}
}
