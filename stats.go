package freqtable

type Stats struct {
	Size                    int
	Capacity                int
	Tombstones              int
	Collisions              int
	LoadFactor              float64
	TombstonesCapacityRatio float32
	TombstonesSizeRatio     float32
}

func (ft *FreqTable) Stats() Stats {
	stats := Stats{
		Size:                    ft.size,
		Capacity:                len(ft.slots),
		Tombstones:              ft.tombstones,
		Collisions:              ft.collisions,
		LoadFactor:              ft.loadFactor(),
		TombstonesCapacityRatio: float32(ft.tombstones) / float32(len(ft.slots)),
	}

	if ft.size > 0 {
		stats.TombstonesSizeRatio = float32(ft.tombstones) / float32(ft.size)
	}

	return stats
}
