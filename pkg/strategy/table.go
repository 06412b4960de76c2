package strategy

import (
	"sort"
	"strings"

	"github.com/matzehuels/iddl/pkg/errors"
)

// DefaultKey is the fallback entry of every role- and section-keyed table.
const DefaultKey = "Default"

// Table is an immutable lookup table with a mandatory fallback entry.
//
// Keys compare case-insensitively, so "button", "Button" and "BUTTON" name the
// same entry. Theme files pass through a config layer that lowercases keys,
// and case-insensitive lookup keeps them interchangeable with the built-ins.
type Table[K ~string, V any] struct {
	name    string
	def     K
	entries map[string]entry[K, V]
}

type entry[K ~string, V any] struct {
	key K
	val V
}

// NewTable builds a table. It fails with INVALID_TABLE when entries has no
// value for def.
func NewTable[K ~string, V any](name string, def K, entries map[K]V) (Table[K, V], error) {
	t := Table[K, V]{name: name, def: def, entries: make(map[string]entry[K, V], len(entries))}
	for k, v := range entries {
		t.entries[fold(k)] = entry[K, V]{key: k, val: v}
	}
	if _, ok := t.entries[fold(def)]; !ok {
		return Table[K, V]{}, errors.New(errors.ErrCodeInvalidTable, "table %s has no default entry %q", name, def)
	}
	return t, nil
}

// MustTable is like NewTable but panics on error. It is meant for the
// built-in tables, which are checked at package initialization.
func MustTable[K ~string, V any](name string, def K, entries map[K]V) Table[K, V] {
	t, err := NewTable(name, def, entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the table name used in error messages.
func (t Table[K, V]) Name() string { return t.name }

// DefaultKey returns the key of the fallback entry.
func (t Table[K, V]) DefaultKey() K { return t.def }

// Get returns the value for k, or the fallback value when k is unknown.
func (t Table[K, V]) Get(k K) V {
	if e, ok := t.entries[fold(k)]; ok {
		return e.val
	}
	return t.entries[fold(t.def)].val
}

// Lookup returns the value for k and whether k has an entry of its own.
func (t Table[K, V]) Lookup(k K) (V, bool) {
	e, ok := t.entries[fold(k)]
	return e.val, ok
}

// Len returns the number of entries including the fallback.
func (t Table[K, V]) Len() int { return len(t.entries) }

// Keys returns every key, sorted.
func (t Table[K, V]) Keys() []K {
	keys := make([]K, 0, len(t.entries))
	for _, e := range t.entries {
		keys = append(keys, e.key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// With returns a copy of t with overrides applied on top. Keys that already
// exist keep their original spelling.
func (t Table[K, V]) With(overrides map[K]V) Table[K, V] {
	out := Table[K, V]{name: t.name, def: t.def, entries: make(map[string]entry[K, V], len(t.entries)+len(overrides))}
	for k, e := range t.entries {
		out.entries[k] = e
	}
	for k, v := range overrides {
		f := fold(k)
		key := k
		if e, ok := out.entries[f]; ok {
			key = e.key
		}
		out.entries[f] = entry[K, V]{key: key, val: v}
	}
	return out
}

// Each calls fn for every entry in key order.
func (t Table[K, V]) Each(fn func(K, V)) {
	for _, k := range t.Keys() {
		fn(k, t.entries[fold(k)].val)
	}
}

func fold[K ~string](k K) string { return strings.ToLower(string(k)) }
