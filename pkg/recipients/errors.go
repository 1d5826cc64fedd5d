package recipients

import "errors"

var (
	// ErrEmptyName indicates a recipient without a display name.
	ErrEmptyName = errors.New("recipients: empty name")

	// ErrEmptyAddress indicates a recipient without an address.
	ErrEmptyAddress = errors.New("recipients: empty address")

	// ErrInvalidAddress indicates an address without an "@".
	ErrInvalidAddress = errors.New("recipients: invalid address")

	// ErrNoRecipients indicates an import that produced no valid entries.
	ErrNoRecipients = errors.New("recipients: no valid recipients found")

	// ErrMalformedCSV indicates the input could not be parsed as CSV at all.
	ErrMalformedCSV = errors.New("recipients: malformed csv")
)
