package repository

import (
	"context"

	"ai-life-planner/internal/model"
)

// Repository is the data access interface for commitments. The parsing,
// conflict and slot functions never touch it directly — usecases fetch the
// list once and hand it to the pure logic.
type Repository interface {
	CreateCommitment(ctx context.Context, opt CreateCommitmentOptions) (model.Commitment, error)
	GetOneCommitment(ctx context.Context, opt GetOneCommitmentOptions) (model.Commitment, error)
	ListCommitments(ctx context.Context, opt ListCommitmentsOptions) ([]model.Commitment, int, error)
	UpdateCommitment(ctx context.Context, opt UpdateCommitmentOptions) (model.Commitment, error)
	DeleteCommitment(ctx context.Context, userID, id string) error
}
