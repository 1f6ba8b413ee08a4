package usecase

import (
	"ai-life-planner/internal/commitment"
	"ai-life-planner/pkg/datemath"
	"ai-life-planner/pkg/groq"
	pkgLog "ai-life-planner/pkg/log"
)

type implUseCase struct {
	l           pkgLog.Logger
	llm         groq.IGroq // nil disables LLM routing, heuristics only
	commitments commitment.UseCase
	dates       *datemath.Parser
}

// New creates a new agent UseCase instance.
func New(
	l pkgLog.Logger,
	llm groq.IGroq,
	commitments commitment.UseCase,
	dates *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:           l,
		llm:         llm,
		commitments: commitments,
		dates:       dates,
	}
}
