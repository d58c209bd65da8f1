package addressbook

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Book maps names to records and remembers the order names were first added.
type Book struct {
	records  map[string]*Record
	order    []string
	reporter *Reporter
}

// Option configures a Book.
type Option func(*Book)

// WithBookReporter sets where rejected records are reported.
// The default reports to slog.Default(); a nil reporter silences the book.
func WithBookReporter(r *Reporter) Option {
	return func(b *Book) {
		b.reporter = r
	}
}

// New creates an empty book.
func New(opts ...Option) *Book {
	b := &Book{records: make(map[string]*Record), reporter: NewReporter(nil)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add stores r under its name. A record with the same name is replaced and
// keeps its position. Records failing Validate are rejected as a whole and
// the book is left unchanged.
func (b *Book) Add(r *Record) error {
	if r == nil {
		return errors.Join(ErrRecordRejected, ErrNilRecord)
	}

	if err := r.Validate(); err != nil {
		b.reporter.RecordRejected(r.Name(), err)
		return errors.Join(ErrRecordRejected, err)
	}

	name := r.Name()
	if _, ok := b.records[name]; !ok {
		b.order = append(b.order, name)
	}
	b.records[name] = r
	return nil
}

// Remove deletes the record stored under name and reports whether it existed.
func (b *Book) Remove(name string) bool {
	if _, ok := b.records[name]; !ok {
		return false
	}
	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(n string) bool { return n == name })
	return true
}

func (b *Book) Get(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

func (b *Book) Len() int { return len(b.order) }

// Names returns the stored names in storage order.
func (b *Book) Names() []string {
	return slices.Clone(b.order)
}

// Criterion is a record filter for Find.
type Criterion func(*Record) bool

// ByName matches the record with exactly this name.
func ByName(name string) Criterion {
	return func(r *Record) bool { return r.Name() == name }
}

// ByPhone matches records holding this phone number.
func ByPhone(number string) Criterion {
	return func(r *Record) bool { return r.HasPhone(number) }
}

// Find returns the records matching all criteria in storage order.
// With no criteria every record matches. The result is never nil.
func (b *Book) Find(criteria ...Criterion) []*Record {
	found := make([]*Record, 0)
	for _, r := range b.snapshot() {
		if matchesAll(r, criteria) {
			found = append(found, r)
		}
	}
	return found
}

func matchesAll(r *Record, criteria []Criterion) bool {
	for _, match := range criteria {
		if match != nil && !match(r) {
			return false
		}
	}
	return true
}

// snapshot lists the stored records in storage order.
func (b *Book) snapshot() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// All iterates the records in storage order. Every call starts over.
func (b *Book) All() iter.Seq[*Record] {
	records := b.snapshot()
	return func(yield func(*Record) bool) {
		for _, r := range records {
			if !yield(r) {
				return
			}
		}
	}
}

// Cursor starts a single forward pass over the records stored right now.
func (b *Book) Cursor() *Cursor {
	return &Cursor{records: b.snapshot()}
}

// Pages splits the records into consecutive batches of size records. The
// last batch may be shorter. The sequence may be ranged over any number of
// times and always starts from the first record.
func (b *Book) Pages(size int) (iter.Seq[[]*Record], error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageSize, size)
	}

	records := b.snapshot()
	return func(yield func([]*Record) bool) {
		for page := range slices.Chunk(records, size) {
			if !yield(slices.Clone(page)) {
				return
			}
		}
	}, nil
}

// Page returns the zero-based page index of the given size. An index past
// the last page yields an empty page.
func (b *Book) Page(index, size int) ([]*Record, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageSize, size)
	}
	if index < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageIndex, index)
	}

	records := b.snapshot()
	if index > len(records)/size {
		return []*Record{}, nil
	}
	offset := index * size
	return slices.Clone(records[offset : offset+min(size, len(records)-offset)]), nil
}

// String renders one "<name>: <record>" line per record in storage order.
func (b *Book) String() string {
	lines := make([]string, 0, len(b.order))
	for _, name := range b.order {
		lines = append(lines, fmt.Sprintf("%s: %s", name, b.records[name]))
	}
	return strings.Join(lines, "\n")
}
