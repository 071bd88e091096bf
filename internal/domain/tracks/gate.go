package tracks

// ComputeUnlocked reports, position by position, which items a learner may act on.
// The first item is always unlocked; any other item is unlocked when it is already
// completed or when the item right before it is completed.
//
// The result is advisory: completion writes do not consult it.
func ComputeUnlocked(items []*ItemView) []bool {
	out := make([]bool, len(items))
	for i, it := range items {
		if i == 0 {
			out[i] = true
			continue
		}
		out[i] = completed(it) || completed(items[i-1])
	}
	return out
}

// ApplyGate stores ComputeUnlocked's result on each item.
func ApplyGate(items []*ItemView) {
	unlocked := ComputeUnlocked(items)
	for i, it := range items {
		if it == nil {
			continue
		}
		u := unlocked[i]
		it.Unlocked = &u
	}
}

func completed(it *ItemView) bool {
	return it != nil && it.Completed
}
