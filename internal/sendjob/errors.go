package sendjob

import "errors"

var (
	// ErrAlreadySending is returned when a job is created for an owner
	// that already has one in flight. The running job is unaffected.
	ErrAlreadySending = errors.New("sendjob: already sending")
)
