package deck

import "errors"

// Sentinel errors for input deck and classlist loading.
var (
	// ErrInvalidDeck is returned when a deck fails validation.
	ErrInvalidDeck = errors.New("invalid input deck")

	// ErrClasslistRequired is returned when the deck names no classlist file.
	ErrClasslistRequired = errors.New("classlist file is required")

	// ErrGroupSizeRequired is returned when the deck has no positive group size.
	ErrGroupSizeRequired = errors.New("group size must be a positive integer")

	// ErrEmptyClasslist is returned when the classlist has no student rows.
	ErrEmptyClasslist = errors.New("classlist has no student rows")

	// ErrUnknownIdentifier is returned when the configured student identifier
	// is not a classlist column.
	ErrUnknownIdentifier = errors.New("student identifier is not a classlist column")
)
