package domain

import "errors"

// Pipeline error taxonomy. Handlers map these onto HTTP statuses with
// errors.Is; wrapping with %w preserves the classification.
var (
	// ErrInvalidInput means the caller submitted unusable content.
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden means the caller asked for something policy denies,
	// such as posting anonymously without being signed in.
	ErrForbidden = errors.New("forbidden")

	// ErrIdentityUnavailable means the identity provider could not be
	// consulted. Distinct from an anonymous caller, which is not an error.
	ErrIdentityUnavailable = errors.New("identity provider unavailable")

	// ErrPersistence means the insert failed and no post exists.
	ErrPersistence = errors.New("persistence failure")

	// ErrProjectionInconsistency means the post was inserted but its
	// read-back projection could not be fetched: created, unconfirmed.
	ErrProjectionInconsistency = errors.New("projection inconsistency")

	// ErrGeneration means the reply backend failed; terminal for that
	// reply attempt, never surfaced to the post-creation caller.
	ErrGeneration = errors.New("reply generation failure")
)
