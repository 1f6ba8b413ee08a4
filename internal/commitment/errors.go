package commitment

import "errors"

var (
	ErrCommitmentNotFound = errors.New("commitment not found")
	ErrInvalidTimeRange   = errors.New("start time must be before end time")
	ErrConflictDetected   = errors.New("commitment conflicts with existing events")
	ErrInvalidPayload     = errors.New("invalid payload")
)
