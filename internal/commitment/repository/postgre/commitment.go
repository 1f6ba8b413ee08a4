package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	repo "ai-life-planner/internal/commitment/repository"
	"ai-life-planner/internal/model"
)

const commitmentColumns = `id, user_id, title, type, start_time, end_time, location, reminder_minutes, gcal_event_id, created_at, updated_at`

// CreateCommitment inserts a new commitment row and returns the created entity.
func (r *implRepository) CreateCommitment(ctx context.Context, opt repo.CreateCommitmentOptions) (model.Commitment, error) {
	query := fmt.Sprintf(`
		INSERT INTO commitments (id, user_id, title, type, start_time, end_time, location, reminder_minutes, gcal_event_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s`, commitmentColumns)

	row := r.db.QueryRowContext(ctx, query,
		opt.ID, opt.UserID, opt.Title, opt.Type, opt.StartTime, opt.EndTime,
		opt.Location, opt.ReminderMinutes, opt.GCalEventID,
	)

	c, err := scanCommitment(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCommitment"), err)
		return model.Commitment{}, repo.ErrFailedToInsert
	}
	return c, nil
}

// GetOneCommitment retrieves a single commitment by the provided filters
// (AND condition). Returns zero-value Commitment (ID == "") when not found —
// do NOT return error for not-found.
func (r *implRepository) GetOneCommitment(ctx context.Context, opt repo.GetOneCommitmentOptions) (model.Commitment, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM commitments WHERE %s LIMIT 1", commitmentColumns, mods)

	c, err := scanCommitment(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Commitment{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneCommitment"), err)
		return model.Commitment{}, repo.ErrFailedToGet
	}
	return c, nil
}

// ListCommitments returns a filtered list of commitments ordered by start
// time ascending, plus the total count ignoring pagination.
func (r *implRepository) ListCommitments(ctx context.Context, opt repo.ListCommitmentsOptions) ([]model.Commitment, int, error) {
	countMods, countArgs := r.buildFilterQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM commitments WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListCommitments"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM commitments %s", commitmentColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCommitments"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var commitments []model.Commitment
	for rows.Next() {
		c, scanErr := scanCommitment(rows)
		if scanErr != nil {
			return nil, 0, repo.ErrFailedToList
		}
		commitments = append(commitments, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListCommitments"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return commitments, total, nil
}

// UpdateCommitment updates a commitment by ID and returns the updated entity.
func (r *implRepository) UpdateCommitment(ctx context.Context, opt repo.UpdateCommitmentOptions) (model.Commitment, error) {
	query := fmt.Sprintf(`
		UPDATE commitments
		SET title = $1, type = $2, start_time = $3, end_time = $4, location = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8
		RETURNING %s`, commitmentColumns)

	row := r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Type, opt.StartTime, opt.EndTime, opt.Location, time.Now(),
		opt.ID, opt.UserID,
	)

	c, err := scanCommitment(row)
	if err == sql.ErrNoRows {
		return model.Commitment{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCommitment"), err)
		return model.Commitment{}, repo.ErrFailedToUpdate
	}
	return c, nil
}

// DeleteCommitment removes a commitment by ID, scoped to its owner.
func (r *implRepository) DeleteCommitment(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM commitments WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteCommitment"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// scanner matches both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCommitment(s scanner) (model.Commitment, error) {
	var c model.Commitment
	err := s.Scan(
		&c.ID, &c.UserID, &c.Title, &c.Type, &c.StartTime, &c.EndTime,
		&c.Location, &c.ReminderMinutes, &c.GCalEventID, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}
