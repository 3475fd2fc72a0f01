package delivery

import "errors"

var (
	ErrMissingRecipient = errors.New("message has no recipient")
	ErrEmptyMessage     = errors.New("message has no subject or body")
)

// Status of one delivery attempt.
type Status string

const (
	StatusSent     Status = "sent"
	StatusRetrying Status = "retrying"
	StatusFailed   Status = "failed"
	// Another worker already holds the job, or it is finished.
	StatusSkipped Status = "skipped"
)

func (s Status) String() string { return string(s) }
