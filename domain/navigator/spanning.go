package navigator

import "sort"

// Road is a two-way road priced in gold and silver.
type Road struct {
	U      int `yaml:"u"`
	V      int `yaml:"v"`
	Gold   int `yaml:"gold"`
	Silver int `yaml:"silver"`
}

// MinSpanningCost returns the cheapest total price of a road set that keeps
// every pair of cities connected whenever the full road network connects
// them. A road costs Gold*goldRate + Silver*silverRate. On a disconnected map
// the result covers each connected region separately.
func MinSpanningCost(n int, roads []Road, goldRate, silverRate int64) int64 {
	cost, _ := MinSpanningForest(n, roads, goldRate, silverRate)
	return cost
}

// MinSpanningForest is MinSpanningCost that also reports how many separate
// regions the map has. A fully connected map has one.
func MinSpanningForest(n int, roads []Road, goldRate, silverRate int64) (int64, int) {
	if n <= 0 {
		return 0, 0
	}

	type priced struct {
		u, v int
		cost int64
	}
	edges := make([]priced, 0, len(roads))
	for _, r := range roads {
		if r.U < 0 || r.U >= n || r.V < 0 || r.V >= n || r.U == r.V {
			continue
		}
		edges = append(edges, priced{
			u:    r.U,
			v:    r.V,
			cost: int64(r.Gold)*goldRate + int64(r.Silver)*silverRate,
		})
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].cost < edges[j].cost })

	ds := newDisjointSet(n)
	var total int64
	for _, e := range edges {
		if ds.union(e.u, e.v) {
			total += e.cost
			if ds.sets == 1 {
				break
			}
		}
	}
	return total, ds.sets
}

type disjointSet struct {
	parent []int
	rank   []uint8
	sets   int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]uint8, n), sets: n}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

func (ds *disjointSet) find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}
	return x
}

// union merges the sets of a and b and reports whether they were separate.
func (ds *disjointSet) union(a, b int) bool {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return false
	}
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}
	ds.sets--
	return true
}
