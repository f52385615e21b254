package mtschema

import (
	"errors"
	"iter"
)

// Keyed is implemented by records that carry a unique collection key.
type Keyed interface {
	Key() string
}

// ErrEmptyKey reports an attempted insert of a record with no key.
var ErrEmptyKey = errors.New("mtschema: record has an empty key")

// ListDict is an ordered collection of child records keyed by a unique
// identifier: dict-like keyed access, list-like positional access, and
// iteration in insertion order regardless of key values.
type ListDict[T Keyed] struct {
	keys  []string
	items map[string]T
}

// NewListDict returns an empty collection.
func NewListDict[T Keyed]() *ListDict[T] {
	return &ListDict[T]{items: map[string]T{}}
}

// Add inserts the item at the end. A duplicate key fails with
// *DuplicateKeyError and leaves the collection unchanged.
func (l *ListDict[T]) Add(item T) error {
	key := item.Key()
	if key == "" {
		return ErrEmptyKey
	}
	if _, ok := l.items[key]; ok {
		return &DuplicateKeyError{Key: key}
	}
	l.items[key] = item
	l.keys = append(l.keys, key)
	return nil
}

// Get returns the item stored under key, or *KeyNotFoundError.
func (l *ListDict[T]) Get(key string) (T, error) {
	item, ok := l.items[key]
	if !ok {
		var zero T
		return zero, &KeyNotFoundError{Key: key}
	}
	return item, nil
}

// Remove deletes and returns the item stored under key, or *KeyNotFoundError.
func (l *ListDict[T]) Remove(key string) (T, error) {
	item, ok := l.items[key]
	if !ok {
		var zero T
		return zero, &KeyNotFoundError{Key: key}
	}
	delete(l.items, key)
	for i, k := range l.keys {
		if k == key {
			l.keys = append(l.keys[:i], l.keys[i+1:]...)
			break
		}
	}
	return item, nil
}

// At returns the item at insertion position i.
func (l *ListDict[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(l.keys) {
		var zero T
		return zero, false
	}
	return l.items[l.keys[i]], true
}

// Len returns the number of items.
func (l *ListDict[T]) Len() int { return len(l.keys) }

// Keys returns the keys in insertion order.
func (l *ListDict[T]) Keys() []string {
	out := make([]string, len(l.keys))
	copy(out, l.keys)
	return out
}

// All iterates items in insertion order. The sequence is restartable.
func (l *ListDict[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, k := range l.keys {
			if !yield(l.items[k]) {
				return
			}
		}
	}
}
