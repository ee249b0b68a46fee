package mui

// A LeafRange selects data entries from the data entry array: Skip
// entries are passed over, the following Read entries are decoded.
type LeafRange struct {
	Skip int
	Read int
}

func (self LeafRange) Total() int {
	return self.Skip + self.Read
}

// LocateLeaves computes the data entries belonging to the matched Type
// indexes. Each Name directory contributes one data entry per entry it
// holds, in Type order.
//
// The entries of all matched types are assumed to be one contiguous
// run. A file with both a string table and a message table separated
// by other types gets the wrong range; this is a known limitation.
func LocateLeaves(name_dirs []*ResourceDirectory, targets []int) LeafRange {
	result := LeafRange{}

	for _, idx := range targets {
		if idx < 0 || idx >= len(name_dirs) {
			continue
		}

		result.Read += name_dirs[idx].NumberOfEntries()
		for j := 0; j < idx; j++ {
			result.Skip += name_dirs[j].NumberOfEntries()
		}
	}

	DebugPrint("Leaf range: skip %d read %d\n", result.Skip, result.Read)

	return result
}

// LocateType returns the exact data entry range of a single Type
// index.
func LocateType(name_dirs []*ResourceDirectory, idx int) LeafRange {
	result := LeafRange{}
	if idx < 0 || idx >= len(name_dirs) {
		return result
	}

	for j := 0; j < idx; j++ {
		result.Skip += name_dirs[j].NumberOfEntries()
	}
	result.Read = name_dirs[idx].NumberOfEntries()

	return result
}
