package agent

import "context"

type UseCase interface {
	// Respond routes one user message: scheduling requests become
	// commitments, everything else is answered with schedule context.
	Respond(ctx context.Context, input RespondInput) (RespondOutput, error)
}
