package freqtable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHornerHash(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		capacity int
		want     int
	}{
		{"empty", "", 10, 0},
		{"single lower", "a", 10, 1},
		{"single upper", "A", 10, 9},
		{"cat", "cat", 10, 4},
		{"dog", "dog", 10, 8},
		{"Cat differs from cat", "Cat", 10, 6},
		{"wraps at capacity", "k", 10, 1},
		{"capacity one", "anything", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, HornerHash(tt.word, tt.capacity))
		})
	}
}

func TestHornerHash_Range(t *testing.T) {
	words := []string{"Zebra", "ZZZZZZZZ", "aAaAaA", "quick", "Brown", "FOX"}

	for _, capacity := range []int{1, 2, 3, 7, 10, 23, 1009} {
		for _, w := range words {
			h := HornerHash(w, capacity)

			require.GreaterOrEqual(t, h, 0)
			require.Less(t, h, capacity)
		}
	}
}

func TestValidWord(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"cat", true},
		{"Cat", true},
		{"ABC", true},
		{"", false},
		{"abc1", false},
		{"hello world", false},
		{"don't", false},
		{"dash-ed", false},
		{" cat", false},
		{"café", false},
		{"cat\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			require.Equal(t, tt.want, ValidWord(tt.word))
		})
	}
}
