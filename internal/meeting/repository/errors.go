package repository

import "errors"

// Store failures. Every error a Repository returns wraps one of these.
var (
	ErrFailedToInsert  = errors.New("failed to insert meeting")
	ErrFailedToGet     = errors.New("failed to get meeting")
	ErrFailedToList    = errors.New("failed to list meetings")
	ErrFailedToDelete  = errors.New("failed to delete meeting")
	ErrFailedToLock    = errors.New("failed to acquire date lock")
	ErrFailedToMigrate = errors.New("failed to migrate meetings schema")
)
