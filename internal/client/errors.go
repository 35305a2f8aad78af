package client

import "errors"

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingTaskID  = errors.New("task id argument is required")
	ErrInvalidTaskID  = errors.New("task id must be a positive integer")
)
