package navigator

import (
	"math"
	"math/big"
)

// WeightedRoad is a two-way road with a travel length.
type WeightedRoad struct {
	U      int `yaml:"u"`
	V      int `yaml:"v"`
	Length int `yaml:"length"`
}

const unreachable = math.MaxInt64

// ShortestDistances runs Floyd-Warshall and returns the n×n distance matrix.
// Unreachable pairs hold math.MaxInt64. Self-loops are ignored and parallel
// roads keep the shortest length. n <= 0 yields nil.
func ShortestDistances(n int, roads []WeightedRoad) [][]int64 {
	if n <= 0 {
		return nil
	}
	dist := make([][]int64, n)
	for i := range dist {
		dist[i] = make([]int64, n)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = unreachable
			}
		}
	}
	for _, r := range roads {
		if r.U < 0 || r.U >= n || r.V < 0 || r.V >= n || r.U == r.V {
			continue
		}
		w := int64(r.Length)
		if w < dist[r.U][r.V] {
			dist[r.U][r.V] = w
			dist[r.V][r.U] = w
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if dist[i][k] == unreachable {
				continue
			}
			for j := 0; j < n; j++ {
				if dist[k][j] == unreachable {
					continue
				}
				if d := dist[i][k] + dist[k][j]; d < dist[i][j] {
					dist[i][j] = d
				}
			}
		}
	}
	return dist
}

// SumShortestDistancesAsBinary adds the shortest distance of every connected
// pair i < j and renders the total in base 2. The total is "0" when no pair
// is connected. Negative cycles make the result meaningless but never fail.
func SumShortestDistancesAsBinary(n int, roads []WeightedRoad) string {
	dist := ShortestDistances(n, roads)
	sum := new(big.Int)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if dist[i][j] != unreachable {
				sum.Add(sum, big.NewInt(dist[i][j]))
			}
		}
	}
	return sum.Text(2)
}
