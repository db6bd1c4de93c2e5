package usecase

import "errors"

var (
	// ErrInvalidDate is returned for dates not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date")
	// ErrIndexOutOfRange is returned for wish indexes outside the catalog.
	ErrIndexOutOfRange = errors.New("wish index out of range")
	// ErrInvalidChoice is returned for votes that are neither like nor dislike.
	ErrInvalidChoice = errors.New("invalid vote choice")
	// ErrMissingVoter is returned when a vote carries no usable fid.
	ErrMissingVoter = errors.New("missing voter fid")
)
