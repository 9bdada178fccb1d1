package notifier

import "errors"

var (
	// ErrRateLimited is returned by a MessagingClient when the API asked to slow down.
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout is returned by a MessagingClient when a request timed out.
	ErrTimeout = errors.New("request timed out")

	// ErrBadRequest is returned by a MessagingClient when the API rejected the request as malformed,
	// e.g. media the server can not process.
	ErrBadRequest = errors.New("bad request")

	ErrNilClient            = errors.New("messaging client is required")
	ErrNoDestinations       = errors.New("at least one destination is required")
	ErrEmptyDestination     = errors.New("destination is empty")
	ErrDuplicateDestination = errors.New("duplicate destination")
)
