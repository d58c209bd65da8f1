package addressbook

import "errors"

var (
	ErrValidationRejected = errors.New("value rejected by field validation")
	ErrUnknownKind        = errors.New("unknown field kind")
	ErrFieldUnset         = errors.New("field holds no accepted value")
	ErrKindMismatch       = errors.New("field kind does not match its slot")

	ErrRecordRejected   = errors.New("record rejected")
	ErrNilRecord        = errors.New("record is nil")
	ErrInvalidPageSize  = errors.New("page size must be at least 1")
	ErrInvalidPageIndex = errors.New("page index must not be negative")
)
