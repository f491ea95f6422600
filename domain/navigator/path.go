package navigator

// Edge is an unweighted two-way link.
type Edge struct {
	U int `yaml:"u"`
	V int `yaml:"v"`
}

// PathExists reports whether dst can be reached from src. Out-of-range
// cities are unreachable; a city always reaches itself.
func PathExists(n int, edges []Edge, src, dst int) bool {
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return false
	}
	if src == dst {
		return true
	}

	adj := make([][]int, n)
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			continue
		}
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	seen := make([]bool, n)
	seen[src] = true
	queue := []int{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if v == dst {
				return true
			}
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return false
}
