package usecase

import (
	"context"
	"strings"

	"ai-life-planner/internal/commitment"
)

// Parse turns one free-text phrase into a structured commitment preview.
func (uc *implUseCase) Parse(ctx context.Context, input commitment.ParseInput) (commitment.ParseOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return commitment.ParseOutput{}, commitment.ErrInvalidPayload
	}

	now := uc.now()
	if input.Now != nil {
		now = input.Now.In(uc.dates.Location())
	}

	parsed := uc.parser.Parse(input.RawText, now)

	uc.l.Debugf(ctx, "Parse: user=%s confidence=%.2f title=%q", input.UserID, parsed.Confidence, parsed.Title)

	return commitment.ParseOutput{
		Parsed:        parsed,
		ShowPreview:   parsed.Confidence > uc.cfg.PreviewThreshold,
		LowConfidence: parsed.Confidence < uc.cfg.LowConfidenceThreshold,
	}, nil
}
