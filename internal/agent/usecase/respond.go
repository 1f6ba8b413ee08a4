package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ai-life-planner/internal/agent"
	"ai-life-planner/internal/commitment"
	"ai-life-planner/internal/model"
	"ai-life-planner/pkg/groq"
)

const defaultDurationMinutes = 60

const answerPromptFormat = `You are a personal schedule assistant. Answer the user's question using
their upcoming commitments below. Be brief and concrete.
Current time: %s.
Upcoming commitments:
%s`

// Respond routes one user message. Failures downstream of validation are
// reported in-band as an error-typed reply, not as a Go error: the agent
// endpoint always answers.
func (uc *implUseCase) Respond(ctx context.Context, input agent.RespondInput) (agent.RespondOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return agent.RespondOutput{}, agent.ErrEmptyMessage
	}

	now := time.Now().In(uc.dates.Location())
	if input.Now != nil {
		now = input.Now.In(uc.dates.Location())
	}

	parseOut, err := uc.commitments.Parse(ctx, commitment.ParseInput{
		UserID:  input.UserID,
		RawText: message,
		Now:     &now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Respond: parse failed: %v", err)
		return errorReply("I could not understand that message."), nil
	}

	intent := uc.classifyIntent(ctx, message, parseOut.Parsed.StartTime != nil)
	uc.l.Debugf(ctx, "Respond: user=%s intent=%s", input.UserID, intent)

	if intent == intentCreate {
		return uc.respondCreate(ctx, input, message, now, parseOut), nil
	}
	return uc.respondAnswer(ctx, input, message, now), nil
}

func (uc *implUseCase) respondCreate(ctx context.Context, input agent.RespondInput, message string, now time.Time, parseOut commitment.ParseOutput) agent.RespondOutput {
	parsed := parseOut.Parsed
	llm := uc.extractFieldsWithLLM(ctx, message, now)

	create := commitment.CreateInput{
		UserID:   input.UserID,
		Title:    parsed.Title,
		Type:     parsed.Type,
		Location: parsed.Location,
	}
	if parsed.StartTime != nil {
		create.StartTime = *parsed.StartTime
	}
	if parsed.EndTime != nil {
		create.EndTime = *parsed.EndTime
	}

	// LLM fields win over the local parse when present.
	if llm != nil {
		if llm.Title != "" {
			create.Title = llm.Title
		}
		if typ := model.CommitmentType(llm.Type); typ.Valid() {
			create.Type = typ
		}
		if llm.Location != "" {
			create.Location = llm.Location
		}
		if llm.StartTime != nil {
			create.StartTime = llm.StartTime.In(uc.dates.Location())
		}
		if llm.EndTime != nil {
			create.EndTime = llm.EndTime.In(uc.dates.Location())
		} else if llm.DurationMinutes > 0 && !create.StartTime.IsZero() {
			create.EndTime = create.StartTime.Add(time.Duration(llm.DurationMinutes) * time.Minute)
		}
	}

	if create.StartTime.IsZero() {
		return errorReply("I could not find a time in that message. Try something like \"gym tomorrow at 6pm\".")
	}
	if create.EndTime.IsZero() {
		duration := parsed.DurationMinutes
		if duration <= 0 {
			duration = defaultDurationMinutes
		}
		create.EndTime = create.StartTime.Add(time.Duration(duration) * time.Minute)
	}
	if create.Title == "" {
		create.Title = "Commitment"
	}

	out, err := uc.commitments.Create(ctx, create)
	if err != nil {
		if errors.Is(err, commitment.ErrConflictDetected) && out.Conflicts != nil {
			return agent.RespondOutput{
				Type:         agent.TypeConflict,
				Message:      out.Conflicts.Result.SuggestionText,
				Conflicts:    out.Conflicts.Result.ConflictingEvents,
				Alternatives: out.Conflicts.Alternatives,
			}
		}
		uc.l.Errorf(ctx, "respondCreate: create failed: %v", err)
		return errorReply("Something went wrong while saving that commitment.")
	}

	return agent.RespondOutput{
		Type: agent.TypeCreationSuccess,
		Message: fmt.Sprintf("Scheduled %q for %s.", out.Commitment.Title,
			out.Commitment.StartTime.Format("Mon Jan 2 15:04")),
		Commitment: &out.Commitment,
		Priority:   out.Priority,
	}
}

func (uc *implUseCase) respondAnswer(ctx context.Context, input agent.RespondInput, message string, now time.Time) agent.RespondOutput {
	listOut, err := uc.commitments.List(ctx, commitment.ListInput{
		UserID: input.UserID,
		From:   now,
		To:     now.AddDate(0, 0, 7),
		Limit:  50,
	})
	if err != nil {
		uc.l.Errorf(ctx, "respondAnswer: list failed: %v", err)
		return errorReply("I could not read your schedule right now.")
	}

	scheduleText := formatSchedule(listOut.Commitments)

	if uc.llm == nil {
		return agent.RespondOutput{Type: agent.TypeAnswer, Message: scheduleText}
	}

	prompt := fmt.Sprintf(answerPromptFormat, now.Format(time.RFC3339), scheduleText)
	resp, err := uc.llm.GenerateContent(ctx, &groq.Request{
		Messages: []groq.Message{
			{Role: "system", Content: prompt},
			{Role: "user", Content: message},
		},
		Temperature: 0.2,
		MaxTokens:   512,
	})
	if err != nil {
		uc.l.Warnf(ctx, "respondAnswer: llm failed, returning schedule listing: %v", err)
		return agent.RespondOutput{Type: agent.TypeAnswer, Message: scheduleText}
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		answer = scheduleText
	}

	return agent.RespondOutput{Type: agent.TypeAnswer, Message: answer}
}

func formatSchedule(commitments []model.Commitment) string {
	if len(commitments) == 0 {
		return "Your schedule for the next 7 days is empty."
	}

	var b strings.Builder
	for _, c := range commitments {
		fmt.Fprintf(&b, "- %s: %s - %s",
			c.Title,
			c.StartTime.Format("Mon Jan 2 15:04"),
			c.EndTime.Format("15:04"))
		if c.Location != "" {
			fmt.Fprintf(&b, " at %s", c.Location)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func errorReply(message string) agent.RespondOutput {
	return agent.RespondOutput{
		Type:    agent.TypeError,
		Message: message,
	}
}
