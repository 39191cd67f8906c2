package freqtable

// hornerBase is the radix words are folded in: 26 letters plus one.
const hornerBase = 27

// HashFunc maps a word onto a slot index in [0, capacity).
type HashFunc func(word string, capacity int) int

// HornerHash folds the word as a base-27 numeral, one character at a time,
// reducing modulo capacity after every step. Characters are taken as
// `c - '`'`, so case is significant and "Cat" and "cat" are distinct.
// The last character is added without a trailing multiply.
func HornerHash(word string, capacity int) int {
	if len(word) == 0 {
		return 0
	}

	last := len(word) - 1
	value := 0
	for i := range last {
		value = floorMod((value+charValue(word[i]))*hornerBase, capacity)
	}

	return floorMod(value+charValue(word[last]), capacity)
}

func charValue(c byte) int {
	return int(c) - '`'
}

// floorMod keeps upper-case letters, whose charValue is negative,
// inside the slot range.
func floorMod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}

	return r
}

// ValidWord reports whether s is a non-empty run of ASCII letters.
func ValidWord(s string) bool {
	if len(s) == 0 {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}

	return true
}
