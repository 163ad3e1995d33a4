package service

import "errors"

// The engine's error taxonomy. Every permission or invariant violation is
// detected before any write and surfaces as one of these, so callers can tell
// "you may not do this" apart from "the target is not in the state you think
// it is". Nothing is silently coerced into a no-op success.
var (
	// ErrForbidden reports that the acting user's role does not permit the
	// operation.
	ErrForbidden = errors.New("actor is not permitted to perform this operation")

	// ErrNotFound reports that the project, membership, invitation or crew
	// the operation targets does not exist.
	ErrNotFound = errors.New("target not found")

	// ErrConflict reports a state collision: duplicate active membership,
	// duplicate pending invitation, target already the crew lead, and so on.
	ErrConflict = errors.New("operation conflicts with current state")

	// ErrExpired reports that an invitation's TTL has lapsed.
	ErrExpired = errors.New("invitation has expired")

	// ErrAlreadyUsed reports that an invitation has already been accepted or
	// declined. Exactly one acceptance ever succeeds per token.
	ErrAlreadyUsed = errors.New("invitation has already been used")

	// ErrInvalidTransition reports a lifecycle violation, e.g. touching an
	// owner membership or mutating an archived project.
	ErrInvalidTransition = errors.New("invalid lifecycle transition")

	// ErrInvalidRequest reports malformed input (bad email, unknown role,
	// missing identifier).
	ErrInvalidRequest = errors.New("invalid request")
)
