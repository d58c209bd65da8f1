package logger

import "errors"

var (
	// ErrUnknownLevel is returned by ParseLevel for unrecognised level names.
	ErrUnknownLevel = errors.New("unknown log level")

	// ErrUnknownFormat is returned by ParseFormat for unrecognised format names.
	ErrUnknownFormat = errors.New("unknown log format")
)
