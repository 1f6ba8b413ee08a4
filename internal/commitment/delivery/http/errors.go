package http

import (
	"ai-life-planner/internal/commitment"
	pkgErrors "ai-life-planner/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case commitment.ErrCommitmentNotFound:
		return pkgErrors.NewHTTPError(404, "commitment not found")
	case commitment.ErrInvalidTimeRange:
		return pkgErrors.NewHTTPError(400, "start time must be before end time")
	case commitment.ErrInvalidPayload:
		return pkgErrors.NewHTTPError(400, "invalid payload")
	case commitment.ErrConflictDetected:
		return pkgErrors.NewHTTPError(409, "commitment conflicts with existing events")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
