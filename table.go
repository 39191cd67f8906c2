package freqtable

import (
	"fmt"

	"go.uber.org/zap"
)

// maxLoadFactor is the live/capacity ratio above which an insert grows the table.
const maxLoadFactor = 0.5

type slotState uint8

const (
	// Never occupied since the backing array was allocated.
	slotEmpty slotState = iota
	// Removed entry. Keeps probe chains intact and may be reclaimed by insert.
	slotDeleted
	slotFull
)

type slot struct {
	state slotState
	key   string
	freq  int
}

type table struct {
	slots []slot

	size       int
	collisions int
	tombstones int

	hashFunc HashFunc
	logger   *zap.Logger
}

type Option func(t *table)

// WithLogger sets the logger rehash events are reported to.
func WithLogger(logger *zap.Logger) Option {
	return func(t *table) {
		t.logger = logger
	}
}

func (t *table) init(capacity int, opts ...Option) {
	t.slots = make([]slot, capacity)
	t.hashFunc = HornerHash

	for _, opt := range opts {
		opt(t)
	}

	if t.logger == nil {
		t.logger = zap.NewNop()
	}
}

func (t *table) hash(word string) int {
	return t.hashFunc(word, len(t.slots))
}

// search returns the slot index holding key, or -1.
// Only an empty slot ends the probe; tombstones are stepped over.
func (t *table) search(key string) int {
	var (
		capacity = len(t.slots)
		idx      = t.hash(key)
	)

	for p := 0; p < capacity; p++ {
		s := &t.slots[idx]
		if s.state == slotEmpty {
			return -1
		}

		if s.state == slotFull && s.key == key {
			return idx
		}

		idx = (idx + 1) % capacity
	}

	return -1
}

// put places key in the table with frequency 1 unless it is already present.
// Returns the slot index of the key and whether it was newly added.
func (t *table) put(key string) (int, bool) {
	var (
		capacity = len(t.slots)
		home     = t.hash(key)
		idx      = home

		target      = -1
		foundTarget bool
		collided    bool
	)

	for p := 0; p < capacity; p++ {
		s := &t.slots[idx]

		// End of the cluster.
		if s.state == slotEmpty {
			if !foundTarget {
				target = idx
				foundTarget = true
			}
			break
		}

		if s.state == slotDeleted {
			// Reclaim the first tombstone, but keep scanning for the key itself.
			if !foundTarget {
				target = idx
				foundTarget = true
			}
		} else {
			if s.key == key {
				return idx, false
			}

			if t.hash(s.key) == home {
				collided = true
			}
		}

		idx = (idx + 1) % capacity
	}

	if !foundTarget {
		panic(fmt.Sprintf(
			"freqtable: probe sequence saturated: size=%d capacity=%d", t.size, capacity,
		))
	}

	if t.slots[target].state == slotDeleted {
		t.tombstones--
	}

	t.slots[target] = slot{state: slotFull, key: key, freq: 1}
	t.size++

	// Counted once per insert, however many probed entries shared the home slot.
	if collided {
		t.collisions++
	}

	return target, true
}

func (t *table) insert(word string) {
	idx, added := t.put(word)
	if !added {
		t.slots[idx].freq++
		return
	}

	if t.loadFactor() > maxLoadFactor {
		t.rehash()
	}
}

func (t *table) frequency(key string) int {
	idx := t.search(key)
	if idx < 0 {
		return 0
	}

	return t.slots[idx].freq
}

func (t *table) delete(key string) (string, bool) {
	idx := t.search(key)
	if idx < 0 {
		return "", false
	}

	removed := t.slots[idx].key
	t.slots[idx] = slot{state: slotDeleted}
	t.size--
	t.tombstones++

	return removed, true
}

func (t *table) loadFactor() float64 {
	return float64(t.size) / float64(len(t.slots))
}

// rehash grows the backing array to the next prime >= 2*capacity+1 and
// re-inserts every live entry in slot order, carrying its frequency over.
// Tombstones are dropped. Collisions are recounted against the new capacity.
func (t *table) rehash() {
	var (
		old      = t.slots
		capacity = growCapacity(len(old))
	)

	t.logger.Info("rehashing table",
		zap.Int("items", t.size),
		zap.Int("capacity", capacity),
	)

	t.slots = make([]slot, capacity)
	t.size = 0
	t.collisions = 0
	t.tombstones = 0

	for i := range old {
		if old[i].state != slotFull {
			continue
		}

		idx, _ := t.put(old[i].key)
		t.slots[idx].freq = old[i].freq
	}
}

// Reset drops every entry and tombstone, keeping the current capacity.
func (t *table) Reset() {
	clear(t.slots)

	t.size = 0
	t.collisions = 0
	t.tombstones = 0
}
