package attendance

import "errors"

var (
	ErrSessionNotFound      = errors.New("attendance session not found")
	ErrActiveSessionExists  = errors.New("an active attendance session already exists")
	ErrNoActiveSession      = errors.New("no active attendance session found")
	ErrSessionAlreadyClosed = errors.New("attendance session already checked out")
)
