package postgre

import (
	"fmt"
	"strings"

	repo "ai-life-planner/internal/commitment/repository"
)

// buildGetOneQuery assembles the WHERE clause for GetOneCommitment.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneCommitmentOptions) (string, []any) {
	var conds []string
	var args []any

	if opt.ID != "" {
		args = append(args, opt.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.UserID != "" {
		args = append(args, opt.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		conds = append(conds, "TRUE")
	}
	return strings.Join(conds, " AND "), args
}

// buildFilterQuery assembles the WHERE clause shared by the count and list
// queries. The time window matches commitments overlapping [From, To).
func (r *implRepository) buildFilterQuery(opt repo.ListCommitmentsOptions) (string, []any) {
	var conds []string
	var args []any

	if opt.UserID != "" {
		args = append(args, opt.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if !opt.From.IsZero() {
		args = append(args, opt.From)
		conds = append(conds, fmt.Sprintf("end_time > $%d", len(args)))
	}
	if !opt.To.IsZero() {
		args = append(args, opt.To)
		conds = append(conds, fmt.Sprintf("start_time < $%d", len(args)))
	}
	if len(conds) == 0 {
		conds = append(conds, "TRUE")
	}
	return strings.Join(conds, " AND "), args
}

// buildListQuery extends the filter with ordering and pagination.
func (r *implRepository) buildListQuery(opt repo.ListCommitmentsOptions) (string, []any) {
	mods, args := r.buildFilterQuery(opt)
	query := fmt.Sprintf("WHERE %s ORDER BY start_time ASC", mods)

	if opt.Limit > 0 {
		args = append(args, opt.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, opt.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return query, args
}
