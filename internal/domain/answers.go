package domain

import "sort"

// AnswerSet maps a question field name to its answer. Callers own the map;
// engine operations never mutate one they were handed.
type AnswerSet map[string]Value

// Get returns the value for field, or None when absent.
func (a AnswerSet) Get(field string) Value {
	if a == nil {
		return None()
	}
	return a[field]
}

// Clone returns a shallow copy. Values are immutable so sharing them is safe.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a)+1)
	for k, v := range a {
		out[k] = v
	}
	return out
}

// With returns a copy of a with field set to v. A None value removes the
// field instead.
func (a AnswerSet) With(field string, v Value) AnswerSet {
	out := a.Clone()
	if v.IsNone() {
		delete(out, field)
		return out
	}
	out[field] = v
	return out
}

// Keys returns the field names in sorted order.
func (a AnswerSet) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether both sets hold the same fields with equal values.
func (a AnswerSet) Equal(b AnswerSet) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		w, ok := b[k]
		if !ok || !v.Equal(w) {
			return false
		}
	}
	return true
}

// Merge layers the given sets left to right into a new set; later sets
// win on key collisions.
func Merge(sets ...AnswerSet) AnswerSet {
	size := 0
	for _, s := range sets {
		size += len(s)
	}
	out := make(AnswerSet, size)
	for _, s := range sets {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}
