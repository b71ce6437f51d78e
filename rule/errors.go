package rule

import "errors"

// Sentinel errors returned by the rule factory.
var (
	// ErrUnknownKind is returned for a rule descriptor with an unsupported kind.
	ErrUnknownKind = errors.New("unknown rule kind")

	// ErrAttributeRequired is returned when a rule descriptor has no attribute.
	ErrAttributeRequired = errors.New("rule attribute is required")

	// ErrUnknownAttribute is returned when no student in the roster carries
	// the rule's attribute.
	ErrUnknownAttribute = errors.New("attribute not present in roster")
)
