package commitment

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Natural-language parsing and scheduling heuristics
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)
	CheckConflicts(ctx context.Context, input CheckConflictsInput) (CheckConflictsOutput, error)
	SuggestSlots(ctx context.Context, input SuggestSlotsInput) (SuggestSlotsOutput, error)
	Patterns(ctx context.Context, userID string) (PatternsOutput, error)

	// Commitment CRUD
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, userID, id string) (DetailOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, userID, id string) error

	// Calendar feed
	ExportICS(ctx context.Context, userID string) ([]byte, error)
}
