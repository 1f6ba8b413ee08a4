package schedule

import (
	"time"

	"ai-life-planner/internal/model"
)

// ClassifyPriority buckets a commitment by its type and how soon it starts,
// relative to the supplied now. Anything within two hours is urgent
// regardless of type.
func ClassifyPriority(typ model.CommitmentType, startTime, now time.Time) model.Priority {
	until := startTime.Sub(now)

	if until <= 2*time.Hour {
		return model.PriorityUrgent
	}

	switch typ {
	case model.TypeExam, model.TypeClass:
		if until <= 24*time.Hour {
			return model.PriorityUrgent
		}
		return model.PriorityHigh
	case model.TypeHackathon, model.TypeSocial:
		if until <= 6*time.Hour {
			return model.PriorityHigh
		}
		return model.PriorityMedium
	default:
		if until <= 6*time.Hour {
			return model.PriorityMedium
		}
		return model.PriorityLow
	}
}
