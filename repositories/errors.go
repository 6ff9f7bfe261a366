package repositories

import "errors"

// Failure taxonomy for the lifecycle core. Controllers match these with
// errors.Is and translate them to HTTP statuses.
var (
	// ErrDuplicateIdentifier: the qrcode_id already exists.
	ErrDuplicateIdentifier = errors.New("duplicate qrcode identifier")

	// ErrInvalidTransition: the unit (or repair record) is not in the
	// status the operation requires.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNotFound: unknown qrcode_id or record id.
	ErrNotFound = errors.New("record not found")

	// ErrNoEligibleUnits: a bulk shipment matched no units in GENERATED
	// status. Per-id exclusions inside a partially eligible batch are not
	// errors.
	ErrNoEligibleUnits = errors.New("no units eligible for shipping")

	// ErrUnknownAgent: the shipping target is not an agent account.
	ErrUnknownAgent = errors.New("unknown agent")

	// ErrNoMatchingParameter: a warranty check was given nothing to query by.
	ErrNoMatchingParameter = errors.New("no query parameter supplied")
)
