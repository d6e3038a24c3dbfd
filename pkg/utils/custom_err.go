package utils

import "errors"

var (
	// ErrValidation is returned when a required field is missing or
	// malformed. Controllers map it to HTTP 400.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a mutation targets an identifier that
	// is not in its collection. The collection is left unchanged.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the actor's role does not permit the
	// operation.
	ErrForbidden = errors.New("forbidden: insufficient permissions")

	// ErrStorageCorrupt is returned by the entity store when a persisted
	// blob fails to parse. Callers recover to an empty collection; the
	// corrupt value stays in storage until the next explicit persist.
	ErrStorageCorrupt = errors.New("stored collection is corrupt")

	// ErrStorageUnavailable covers I/O failures of the storage backend.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrCollaborator covers network failures of an external collaborator.
	// State is left unchanged when it occurs.
	ErrCollaborator = errors.New("collaborator failure")

	// ErrSuggestionUnavailable is returned when no suggestion provider
	// credential is configured.
	ErrSuggestionUnavailable = errors.New("suggestion service not configured")

	// ErrSuggestionInFlight is returned when a suggestion request for the
	// same lodging is already pending.
	ErrSuggestionInFlight = errors.New("suggestion request already in flight")

	ErrInvalidCredentials = errors.New("invalid credentials")
)
