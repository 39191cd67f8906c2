package freqtable

import (
	"errors"
	"fmt"
	"iter"
)

// DefaultCapacity is the initial capacity used by NewDefault.
const DefaultCapacity = 10

var ErrInvalidCapacity = errors.New("freqtable: capacity must be positive")

// FreqTable is a word-frequency counter backed by an open-addressed hash table
// with linear probing. Removed words leave tombstones behind, which later
// inserts may reclaim. The table grows to a prime capacity whenever its load
// factor goes above one half, and never shrinks.
//
// Only words made of ASCII letters are stored. Any other input is ignored by
// Insert and reported as absent by the lookups.
//
// FreqTable is not safe for concurrent use.
type FreqTable struct {
	table
}

// Returns a new table with the given initial capacity.
// The capacity is used as is; only growth targets are rounded to a prime.
func New(capacity int, opts ...Option) (*FreqTable, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	var ft FreqTable
	ft.init(capacity, opts...)

	return &ft, nil
}

// Returns a new table with DefaultCapacity.
func NewDefault(opts ...Option) *FreqTable {
	var ft FreqTable
	ft.init(DefaultCapacity, opts...)

	return &ft
}

// Inserts a word, or increments its frequency if it is already present.
// Invalid words are ignored.
func (ft *FreqTable) Insert(word string) {
	if !ValidWord(word) {
		return
	}

	ft.insert(word)
}

// Returns the number of words in the table.
func (ft *FreqTable) Size() int {
	return ft.size
}

// Returns the length of the backing array.
func (ft *FreqTable) Capacity() int {
	return len(ft.slots)
}

// Returns the ratio of words to capacity.
func (ft *FreqTable) LoadFactor() float64 {
	return ft.loadFactor()
}

// Checks whether a word is in the table.
func (ft *FreqTable) Contains(key string) bool {
	if !ValidWord(key) {
		return false
	}

	return ft.search(key) >= 0
}

// Returns the number of inserts that landed in an occupied cluster
// containing another word with the same hash, since the last rehash.
func (ft *FreqTable) NumOfCollisions() int {
	return ft.collisions
}

// Returns the hash of value against the current capacity.
func (ft *FreqTable) HashValue(value string) int {
	return ft.hash(value)
}

// Returns how many times a word was inserted, or 0 if it is absent.
func (ft *FreqTable) ShowFrequency(key string) int {
	if !ValidWord(key) {
		return 0
	}

	return ft.frequency(key)
}

// Removes a word. Returns the removed word and whether it was present.
func (ft *FreqTable) Remove(key string) (string, bool) {
	if !ValidWord(key) {
		return "", false
	}

	return ft.delete(key)
}

// All yields every word with its frequency in slot order.
// The table must not be modified during iteration.
func (ft *FreqTable) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for i := range ft.slots {
			s := &ft.slots[i]
			if s.state != slotFull {
				continue
			}

			if !yield(s.key, s.freq) {
				return
			}
		}
	}
}
