package usecase

import (
	"context"
	"fmt"

	"ai-life-planner/internal/commitment"
	"ai-life-planner/internal/commitment/repository"
	"ai-life-planner/internal/commitment/schedule"
)

// List returns a page of the user's commitments ordered by start time.
func (uc *implUseCase) List(ctx context.Context, input commitment.ListInput) (commitment.ListOutput, error) {
	commitments, total, err := uc.repo.ListCommitments(ctx, repository.ListCommitmentsOptions{
		UserID: input.UserID,
		From:   input.From,
		To:     input.To,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return commitment.ListOutput{}, fmt.Errorf("failed to list commitments: %w", err)
	}

	return commitment.ListOutput{
		Commitments: commitments,
		Total:       total,
		Limit:       input.Limit,
		Offset:      input.Offset,
	}, nil
}

// Detail returns one commitment enriched with its current priority and an
// estimated travel buffer for its location.
func (uc *implUseCase) Detail(ctx context.Context, userID, id string) (commitment.DetailOutput, error) {
	found, err := uc.repo.GetOneCommitment(ctx, repository.GetOneCommitmentOptions{
		ID:     id,
		UserID: userID,
	})
	if err != nil {
		return commitment.DetailOutput{}, fmt.Errorf("failed to get commitment: %w", err)
	}
	if found.ID == "" {
		return commitment.DetailOutput{}, commitment.ErrCommitmentNotFound
	}

	out := commitment.DetailOutput{
		Commitment: found,
		Priority:   schedule.ClassifyPriority(found.Type, found.StartTime, uc.now()),
	}
	if found.Location != "" {
		out.TravelMinutes = schedule.EstimateTravelMinutes(found.Location)
	}

	return out, nil
}

// Update merges the provided fields into an existing commitment.
func (uc *implUseCase) Update(ctx context.Context, input commitment.UpdateInput) (commitment.UpdateOutput, error) {
	if input.Type != "" && !input.Type.Valid() {
		return commitment.UpdateOutput{}, commitment.ErrInvalidPayload
	}

	existing, err := uc.repo.GetOneCommitment(ctx, repository.GetOneCommitmentOptions{
		ID:     input.ID,
		UserID: input.UserID,
	})
	if err != nil {
		return commitment.UpdateOutput{}, fmt.Errorf("failed to get commitment: %w", err)
	}
	if existing.ID == "" {
		return commitment.UpdateOutput{}, commitment.ErrCommitmentNotFound
	}

	opt := repository.UpdateCommitmentOptions{
		ID:        existing.ID,
		UserID:    existing.UserID,
		Title:     existing.Title,
		Type:      existing.Type,
		StartTime: existing.StartTime,
		EndTime:   existing.EndTime,
		Location:  existing.Location,
	}
	if input.Title != "" {
		opt.Title = input.Title
	}
	if input.Type != "" {
		opt.Type = input.Type
	}
	if input.StartTime != nil {
		opt.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		opt.EndTime = *input.EndTime
	}
	if input.Location != "" {
		opt.Location = input.Location
	}

	if !opt.StartTime.Before(opt.EndTime) {
		return commitment.UpdateOutput{}, commitment.ErrInvalidTimeRange
	}

	updated, err := uc.repo.UpdateCommitment(ctx, opt)
	if err != nil {
		return commitment.UpdateOutput{}, fmt.Errorf("failed to update commitment: %w", err)
	}

	uc.invalidateEvents(input.UserID)

	return commitment.UpdateOutput{Commitment: updated}, nil
}

// Delete removes a commitment owned by the user.
func (uc *implUseCase) Delete(ctx context.Context, userID, id string) error {
	existing, err := uc.repo.GetOneCommitment(ctx, repository.GetOneCommitmentOptions{
		ID:     id,
		UserID: userID,
	})
	if err != nil {
		return fmt.Errorf("failed to get commitment: %w", err)
	}
	if existing.ID == "" {
		return commitment.ErrCommitmentNotFound
	}

	if err := uc.repo.DeleteCommitment(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete commitment: %w", err)
	}

	uc.invalidateEvents(userID)
	uc.l.Infof(ctx, "Delete: removed commitment id=%s user=%s", id, userID)

	return nil
}
