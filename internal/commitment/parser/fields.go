package parser

import (
	"regexp"
	"strings"

	"ai-life-planner/internal/model"
)

// FieldsResult is the output of the field extractor.
type FieldsResult struct {
	Title        string
	TitlePrimary bool // true when the title came from the primary boundary pattern
	Type         model.CommitmentType
	Location     string
}

// titleBoundaryRe captures the text preceding the first time/date keyword.
var titleBoundaryRe = regexp.MustCompile(`(?i)^(.+?)\s+(?:at|on|from|tomorrow|today|next|this)\b`)

// titleSplitRe is the fallback: split the input on the same keyword set.
var titleSplitRe = regexp.MustCompile(`(?i)\b(?:at|on|from|tomorrow|today|next|this)\b`)

// TypeKeywordSet maps a commitment type to its trigger keywords.
type TypeKeywordSet struct {
	Type     model.CommitmentType
	Keywords []string
}

// TypeKeywords is checked in declaration order; the first matching category
// wins. Matching is case-insensitive substring containment.
var TypeKeywords = []TypeKeywordSet{
	{model.TypeClass, []string{"class", "lecture", "course", "lesson", "seminar"}},
	{model.TypeGym, []string{"gym", "workout", "exercise", "fitness", "training"}},
	{model.TypeSocial, []string{"dinner", "lunch", "coffee", "party", "hangout", "social"}},
	{model.TypeExam, []string{"exam", "test", "quiz", "assessment"}},
	{model.TypeHackathon, []string{"hackathon", "coding competition", "hack"}},
}

// LocationPatterns is the ordered location pattern table: "at X", "in X",
// "location: X". Each capture stops at the next from/for/"at <digit>"
// boundary or end of string. The leading letter requirement keeps clock
// times ("at 3pm") from being read as locations.
var LocationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bat\s+([a-zA-Z].*?)(?:\s+(?:from|for|at\s*\d).*)?$`),
	regexp.MustCompile(`(?i)\bin\s+([a-zA-Z].*?)(?:\s+(?:from|for|at\s*\d).*)?$`),
	regexp.MustCompile(`(?i)\blocation:\s*(.+?)(?:\s+(?:from|for|at\s*\d).*)?$`),
}

// ExtractFields pulls title, type and location out of raw text. Any field
// that cannot be recognized is left unset.
func (p *Parser) ExtractFields(text string) FieldsResult {
	var res FieldsResult
	res.Title, res.TitlePrimary = extractTitle(text)
	res.Type = extractType(text)
	res.Location = extractLocation(text)
	return res
}

func extractTitle(text string) (string, bool) {
	if m := titleBoundaryRe.FindStringSubmatch(text); m != nil {
		if title := strings.TrimSpace(m[1]); title != "" {
			return title, true
		}
	}

	parts := titleSplitRe.Split(text, 2)
	if len(parts) > 1 {
		if title := strings.TrimSpace(parts[0]); title != "" {
			return title, false
		}
	}

	return "", false
}

func extractType(text string) model.CommitmentType {
	lower := strings.ToLower(text)
	for _, set := range TypeKeywords {
		for _, kw := range set.Keywords {
			if strings.Contains(lower, kw) {
				return set.Type
			}
		}
	}
	return ""
}

func extractLocation(text string) string {
	for _, re := range LocationPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if loc := strings.TrimSpace(m[1]); loc != "" {
				return loc
			}
		}
	}
	return ""
}
