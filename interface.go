package freqtable

import "io"

// HashTable is the contract of a word-frequency hash table.
type HashTable interface {
	Insert(word string)
	Size() int
	Contains(key string) bool
	NumOfCollisions() int
	HashValue(value string) int
	ShowFrequency(key string) int
	Remove(key string) (string, bool)
	Display(w io.Writer) error
}

var _ HashTable = (*FreqTable)(nil)
