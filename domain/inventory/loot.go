package inventory

// OptimizeLootSplit returns the smallest possible |A-B| when coins are split
// between two players, every coin going to exactly one of them.
func OptimizeLootSplit(coins []int) int {
	// Shift the reachable-sum range so negative coins index from zero.
	neg, pos := 0, 0
	for _, c := range coins {
		if c < 0 {
			neg += c
		} else {
			pos += c
		}
	}
	total := neg + pos
	width := pos - neg + 1

	reach := make([]bool, width)
	reach[-neg] = true
	for _, c := range coins {
		next := make([]bool, width)
		for s, ok := range reach {
			if !ok {
				continue
			}
			next[s] = true
			next[s+c] = true
		}
		reach = next
	}

	best := -1
	for s, ok := range reach {
		if !ok {
			continue
		}
		diff := abs(total - 2*(s+neg))
		if best < 0 || diff < best {
			best = diff
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
