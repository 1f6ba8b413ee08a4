package repository

import (
	"time"

	"ai-life-planner/internal/model"
)

// CreateCommitmentOptions holds parameters for inserting a new commitment.
type CreateCommitmentOptions struct {
	ID              string
	UserID          string
	Title           string
	Type            model.CommitmentType
	StartTime       time.Time
	EndTime         time.Time
	Location        string
	ReminderMinutes int
	GCalEventID     string
}

// GetOneCommitmentOptions holds filter parameters for fetching a single
// commitment. All non-empty fields are applied as AND conditions.
type GetOneCommitmentOptions struct {
	ID     string
	UserID string
}

// ListCommitmentsOptions filters and paginates a commitment listing. Zero
// From/To means no time-window filter; zero Limit means no pagination.
type ListCommitmentsOptions struct {
	UserID string
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

// UpdateCommitmentOptions holds the full post-merge state to persist.
type UpdateCommitmentOptions struct {
	ID        string
	UserID    string
	Title     string
	Type      model.CommitmentType
	StartTime time.Time
	EndTime   time.Time
	Location  string
}
