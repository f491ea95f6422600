package inventory

// Item is one thing the player may carry.
type Item struct {
	Weight int `yaml:"weight"`
	Value  int `yaml:"value"`
}

// MaximizeCarryValue solves 0/1 knapsack: the best total value of a subset
// of items whose weights fit in capacity. Items with non-positive weight are
// free to take when their value is positive.
func MaximizeCarryValue(capacity int, items []Item) int {
	if capacity <= 0 {
		capacity = 0
	}
	best := make([]int, capacity+1)
	bonus := 0
	for _, it := range items {
		if it.Weight <= 0 {
			if it.Value > 0 {
				bonus += it.Value
			}
			continue
		}
		for w := capacity; w >= it.Weight; w-- {
			if v := best[w-it.Weight] + it.Value; v > best[w] {
				best[w] = v
			}
		}
	}
	return best[capacity] + bonus
}
