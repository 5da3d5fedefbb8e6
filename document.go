package acf

import (
	"iter"

	"github.com/acfkit/acf/log"
)

// Document is the full parsed result: an ordered sequence of root-level
// entries. A file may contain more than one top-level block, though Steam
// manifests conventionally hold a single AppState entry.
//
// Documents are constructed once during parsing and must not be modified
// afterward.
type Document struct {
	Entries []*Entry

	logger log.Logger
}

// Entry retrieves a root-level entry by name.
// Returns (nil, false) if no entry with that name exists.
func (d *Document) Entry(name string) (*Entry, bool) {
	for _, e := range d.Entries {
		if e.Name == name {
			return e, true
		}
	}

	return nil, false
}

// All returns an iterator over all root-level entries in parse order.
func (d *Document) All() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for _, e := range d.Entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Lookup resolves a key path rooted at an entry name.
// The first path component selects a root entry; each following component
// descends into a nested entry. Returns (zero, false) when any component
// fails to resolve or a scalar is reached before the path is exhausted.
func (d *Document) Lookup(path ...string) (Value, bool) {
	if len(path) == 0 {
		return Value{}, false
	}

	root, ok := d.Entry(path[0])
	if !ok {
		return Value{}, false
	}

	v := Value{Kind: KindNested, Nested: root}

	for _, key := range path[1:] {
		if v.Kind != KindNested {
			return Value{}, false
		}

		v, ok = v.Nested.Get(key)
		if !ok {
			return Value{}, false
		}
	}

	return v, true
}

// Entry is a named block containing an insertion-ordered mapping from keys
// to values, where a value may itself be another Entry. An Entry exclusively
// owns its expressions and any nested entries reachable through them: the
// structure is a strict tree, never cyclic.
type Entry struct {
	Name string

	pairs []pair
	index map[string]int
}

// pair is a single key-value expression within an entry.
type pair struct {
	key   string
	value Value
}

// newEntry creates an empty entry with the given name.
func newEntry(name string) *Entry {
	return &Entry{
		Name:  name,
		index: make(map[string]int),
	}
}

// put stores a key-value expression. When the key already exists, the new
// value replaces the previous one in its original insertion position
// (last-value-wins).
func (e *Entry) put(key string, v Value) {
	if i, ok := e.index[key]; ok {
		e.pairs[i].value = v

		return
	}

	e.index[key] = len(e.pairs)
	e.pairs = append(e.pairs, pair{key: key, value: v})
}

// Len returns the number of expressions in the entry.
func (e *Entry) Len() int { return len(e.pairs) }

// Get retrieves the value stored under key.
// Returns (zero, false) if the key does not exist.
func (e *Entry) Get(key string) (Value, bool) {
	i, ok := e.index[key]
	if !ok {
		return Value{}, false
	}

	return e.pairs[i].value, true
}

// Keys returns an iterator over the entry's keys in insertion order.
func (e *Entry) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, p := range e.pairs {
			if !yield(p.key) {
				return
			}
		}
	}
}

// Pairs returns an iterator over the entry's key-value expressions in
// insertion order.
func (e *Entry) Pairs() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, p := range e.pairs {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Kind indicates the variant held by a Value.
type Kind int

const (
	// KindScalar is a leaf value: opaque text associated with a key.
	KindScalar Kind = iota

	// KindNested is a sub-block stored under a key.
	KindNested
)

// String returns a string representation of the value kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindNested:
		return "Nested"
	default:
		return "Unknown"
	}
}

// Value is a tagged variant: either a scalar string or a nested entry.
// Exactly one of Scalar or Nested is meaningful, selected by Kind.
type Value struct {
	Kind   Kind
	Scalar string // KindScalar only
	Nested *Entry // KindNested only
}
