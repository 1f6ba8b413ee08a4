package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert commitment")
	ErrFailedToGet    = errors.New("failed to get commitment")
	ErrFailedToList   = errors.New("failed to list commitments")
	ErrFailedToUpdate = errors.New("failed to update commitment")
	ErrFailedToDelete = errors.New("failed to delete commitment")
)
