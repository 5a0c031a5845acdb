package availability

// FilterByTimes returns the slots whose time label is in preferred.
// A nil or empty preferred list keeps every slot.
func FilterByTimes(slots []Slot, preferred []string) []Slot {
	if len(preferred) == 0 {
		return slots
	}

	want := make(map[string]bool, len(preferred))
	for _, t := range preferred {
		want[t] = true
	}

	filtered := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		if want[slot.Time] {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}
