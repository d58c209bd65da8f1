package addressbook

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Record is one contact: a name, phone numbers in insertion order and an
// optional birthday.
type Record struct {
	name     Field
	phones   []Field
	birthday *Field
	reporter *Reporter
	now      func() time.Time
}

type recordOptions struct {
	phones   []string
	birthday *string
	reporter *Reporter
	clock    func() time.Time
}

// RecordOption configures NewRecord.
type RecordOption func(*recordOptions)

// WithPhone adds a phone number. Repeat it for several numbers.
func WithPhone(number string) RecordOption {
	return func(o *recordOptions) {
		o.phones = append(o.phones, number)
	}
}

// WithBirthday sets the birthday, written as DD.MM.YYYY.
func WithBirthday(date string) RecordOption {
	return func(o *recordOptions) {
		o.birthday = &date
	}
}

// WithReporter sets where rejected values of the record are reported.
// The default reports to slog.Default(); a nil reporter silences the record.
func WithReporter(r *Reporter) RecordOption {
	return func(o *recordOptions) {
		o.reporter = r
	}
}

// WithClock overrides the source of "today" used by DaysToBirthday.
func WithClock(now func() time.Time) RecordOption {
	return func(o *recordOptions) {
		if now != nil {
			o.clock = now
		}
	}
}

// NewRecord creates a record. Rejected phones and birthdays are reported and
// kept as unset placeholders, which makes the record inadmissible to a Book.
func NewRecord(name string, opts ...RecordOption) *Record {
	o := recordOptions{clock: time.Now, reporter: NewReporter(nil)}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Record{
		name:     NewName(name),
		phones:   make([]Field, 0, len(o.phones)),
		reporter: o.reporter,
		now:      o.clock,
	}

	for _, number := range o.phones {
		phone, err := NewPhone(number)
		if err != nil {
			r.reporter.FieldRejected(KindPhone, number, err)
		}
		r.phones = append(r.phones, phone)
	}

	if o.birthday != nil {
		birthday, err := NewBirthday(*o.birthday)
		if err != nil {
			r.reporter.FieldRejected(KindBirthday, *o.birthday, err)
		}
		r.birthday = &birthday
	}

	return r
}

func (r *Record) Name() string { return r.name.Value() }

// Phones returns a copy of the phone fields, placeholders included.
func (r *Record) Phones() []Field {
	return slices.Clone(r.phones)
}

// Birthday returns the birthday field and whether one was given.
func (r *Record) Birthday() (Field, bool) {
	if r.birthday == nil {
		return Field{}, false
	}
	return *r.birthday, true
}

// HasPhone reports whether an accepted phone equals number.
func (r *Record) HasPhone(number string) bool {
	return slices.ContainsFunc(r.phones, func(f Field) bool { return f.Matches(number) })
}

// AddPhone appends number if it is valid. On rejection the phone list is
// left as it was.
func (r *Record) AddPhone(number string) error {
	phone, err := NewPhone(number)
	if err != nil {
		r.reporter.FieldRejected(KindPhone, number, err)
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone removes every accepted phone equal to number.
// It reports whether anything was removed.
func (r *Record) RemovePhone(number string) bool {
	before := len(r.phones)
	r.phones = slices.DeleteFunc(r.phones, func(f Field) bool { return f.Matches(number) })
	return len(r.phones) < before
}

// ChangePhone replaces the first accepted phone equal to oldNumber with
// newNumber, keeping its position. found is false when oldNumber is absent,
// in which case nothing changes. A rejected newNumber still replaces the old
// phone with an unset placeholder and err is returned.
func (r *Record) ChangePhone(oldNumber, newNumber string) (found bool, err error) {
	i := slices.IndexFunc(r.phones, func(f Field) bool { return f.Matches(oldNumber) })
	if i < 0 {
		return false, nil
	}

	phone, err := NewPhone(newNumber)
	if err != nil {
		r.reporter.FieldRejected(KindPhone, newNumber, err)
	}
	r.phones[i] = phone
	return true, err
}

// SetBirthday assigns a new birthday. On rejection the previous birthday,
// if any, is kept.
func (r *Record) SetBirthday(date string) error {
	if r.birthday == nil {
		birthday, err := NewBirthday(date)
		if err != nil {
			r.reporter.FieldRejected(KindBirthday, date, err)
			return err
		}
		r.birthday = &birthday
		return nil
	}

	if err := r.birthday.Set(date); err != nil {
		r.reporter.FieldRejected(KindBirthday, date, err)
		return err
	}
	return nil
}

// DaysToBirthday counts days from today to the next birthday.
// ok is false when the record has no accepted birthday.
func (r *Record) DaysToBirthday() (days int, ok bool) {
	return r.DaysToBirthdayFrom(r.now())
}

// DaysToBirthdayFrom is DaysToBirthday with an explicit today. Only the
// calendar date of today is used. A birthday falling on today counts as next
// year's, so the result is always between 1 and 366.
func (r *Record) DaysToBirthdayFrom(today time.Time) (days int, ok bool) {
	if r.birthday == nil || !r.birthday.IsSet() {
		return 0, false
	}

	born, err := time.Parse(BirthdayLayout, r.birthday.Value())
	if err != nil {
		return 0, false
	}
	return daysUntilAnniversary(born, today), true
}

// Validate checks that every field of the record holds an accepted value of
// the right kind.
func (r *Record) Validate() error {
	var errs []error

	if err := checkSlot(r.name, KindName); err != nil {
		errs = append(errs, fmt.Errorf("name: %w", err))
	}
	for i, phone := range r.phones {
		if err := checkSlot(phone, KindPhone); err != nil {
			errs = append(errs, fmt.Errorf("phone %d: %w", i, err))
		}
	}
	if r.birthday != nil {
		if err := checkSlot(*r.birthday, KindBirthday); err != nil {
			errs = append(errs, fmt.Errorf("birthday: %w", err))
		}
	}

	return errors.Join(errs...)
}

func checkSlot(f Field, kind Kind) error {
	if f.Kind() != kind {
		return fmt.Errorf("%w: got %s, want %s", ErrKindMismatch, f.Kind(), kind)
	}
	if !f.IsSet() {
		return ErrFieldUnset
	}
	return kind.Validate(f.Value())
}

// String renders the record as "Name: <name>, Phones: <p1>, <p2>".
func (r *Record) String() string {
	phones := make([]string, 0, len(r.phones))
	for _, phone := range r.phones {
		phones = append(phones, phone.String())
	}
	return fmt.Sprintf("Name: %s, Phones: %s", r.name.Value(), strings.Join(phones, ", "))
}
