package http

import (
	"ai-life-planner/internal/agent"
	pkgErrors "ai-life-planner/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case agent.ErrEmptyMessage:
		return pkgErrors.NewHTTPError(400, "message is empty")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
