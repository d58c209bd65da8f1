package addressbook

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/addressbook/pkg/validator"
)

// Kind selects the validation rule of a Field.
type Kind uint8

const (
	KindName Kind = iota + 1
	KindPhone
	KindBirthday
)

// BirthdayLayout is the only accepted birthday format.
const BirthdayLayout = validator.DottedDateLayout

func (k Kind) String() string {
	switch k {
	case KindName:
		return "name"
	case KindPhone:
		return "phone"
	case KindBirthday:
		return "birthday"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Validate checks value against the rule of the kind.
// Rejections wrap ErrValidationRejected and the validator.ValidationErrors
// describing the failure.
func (k Kind) Validate(value string) error {
	var err error
	switch k {
	case KindName:
		return nil
	case KindPhone:
		err = validator.Apply(validator.ValidUAPhone(k.String(), value))
	case KindBirthday:
		err = validator.Apply(validator.ValidDateLayout(k.String(), value, BirthdayLayout))
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}
	if err != nil {
		return errors.Join(ErrValidationRejected, err)
	}
	return nil
}

// Valid reports whether value passes the rule of the kind.
func (k Kind) Valid(value string) bool {
	return k.Validate(value) == nil
}

// Field is a value guarded by the validation rule of its kind.
// The zero Field is unset and has no kind.
type Field struct {
	kind  Kind
	value string
	set   bool
}

// NewField builds a field of the given kind. When value is rejected the
// returned field is an unset placeholder of that kind and err is non-nil.
func NewField(kind Kind, value string) (Field, error) {
	f := Field{kind: kind}
	if err := f.Set(value); err != nil {
		return f, err
	}
	return f, nil
}

// NewName builds a name field. Names are always accepted.
func NewName(value string) Field {
	return Field{kind: KindName, value: value, set: true}
}

func NewPhone(value string) (Field, error) {
	return NewField(KindPhone, value)
}

func NewBirthday(value string) (Field, error) {
	return NewField(KindBirthday, value)
}

// Set assigns value if the kind accepts it. On rejection the field keeps
// whatever it held before.
func (f *Field) Set(value string) error {
	if err := f.kind.Validate(value); err != nil {
		return err
	}
	f.value = value
	f.set = true
	return nil
}

func (f Field) Kind() Kind { return f.kind }

// Value returns the accepted value, or "" when the field is unset.
func (f Field) Value() string { return f.value }

// IsSet reports whether the field holds an accepted value.
func (f Field) IsSet() bool { return f.set }

// Matches reports whether the field is set and holds exactly value.
func (f Field) Matches(value string) bool {
	return f.set && f.value == value
}

func (f Field) String() string {
	if !f.set {
		return "<invalid>"
	}
	return f.value
}
