package leaderboard

import (
	"math"
	"math/rand"
)

type node struct {
	playerID int32
	score    int32
	forward  []*node
}

// Entry is a copy of one ranked player.
type Entry struct {
	PlayerID int32
	Score    int32
}

// Leaderboard ranks players by score. Not safe for concurrent use.
type Leaderboard struct {
	head     *node
	level    int // highest level in use
	maxLevel int
	size     int
	rnd      *rand.Rand
}

// New returns an empty leaderboard.
func New(opts ...Option) *Leaderboard {
	lb := &Leaderboard{maxLevel: DefaultMaxLevel}
	for _, opt := range opts {
		opt(lb)
	}
	if lb.rnd == nil {
		lb.rnd = defaultRand()
	}
	lb.head = &node{score: math.MinInt32, forward: make([]*node, lb.maxLevel)}
	return lb
}

// AddScore sets id's score, replacing any previous score.
func (lb *Leaderboard) AddScore(id, score int32) {
	lb.RemovePlayer(id)

	update := make([]*node, lb.maxLevel)
	x := lb.head
	for i := lb.level; i >= 0; i-- {
		for x.forward[i] != nil && ranksAhead(x.forward[i], score, id) {
			x = x.forward[i]
		}
		update[i] = x
	}

	lvl := lb.randomLevel()
	if lvl > lb.level {
		for i := lb.level + 1; i <= lvl; i++ {
			update[i] = lb.head
		}
		lb.level = lvl
	}

	n := &node{playerID: id, score: score, forward: make([]*node, lvl+1)}
	for i := 0; i <= lvl; i++ {
		n.forward[i] = update[i].forward[i]
		update[i].forward[i] = n
	}
	lb.size++
}

// RemovePlayer deletes id. Unknown ids are a no-op.
func (lb *Leaderboard) RemovePlayer(id int32) {
	target := lb.find(id)
	if target == nil {
		return
	}

	update := make([]*node, lb.maxLevel)
	x := lb.head
	for i := lb.level; i >= 0; i-- {
		for x.forward[i] != nil && ranksAhead(x.forward[i], target.score, id) {
			x = x.forward[i]
		}
		update[i] = x
	}

	for i := 0; i <= lb.level; i++ {
		if update[i].forward[i] != target {
			break
		}
		update[i].forward[i] = target.forward[i]
	}
	for lb.level > 0 && lb.head.forward[lb.level] == nil {
		lb.level--
	}
	lb.size--
}

// TopN returns up to n player ids, best first. n <= 0 yields an empty slice.
func (lb *Leaderboard) TopN(n int) []int32 {
	if n <= 0 {
		return []int32{}
	}
	out := make([]int32, 0, min(n, lb.size))
	for x := lb.head.forward[0]; x != nil && len(out) < n; x = x.forward[0] {
		out = append(out, x.playerID)
	}
	return out
}

// TopEntries is TopN with scores.
func (lb *Leaderboard) TopEntries(n int) []Entry {
	if n <= 0 {
		return []Entry{}
	}
	out := make([]Entry, 0, min(n, lb.size))
	for x := lb.head.forward[0]; x != nil && len(out) < n; x = x.forward[0] {
		out = append(out, Entry{PlayerID: x.playerID, Score: x.score})
	}
	return out
}

// Entries returns every player with their score, best first.
func (lb *Leaderboard) Entries() []Entry {
	return lb.TopEntries(lb.size)
}

// Score returns id's current score.
func (lb *Leaderboard) Score(id int32) (int32, bool) {
	n := lb.find(id)
	if n == nil {
		return 0, false
	}
	return n.score, true
}

// Rank returns id's 1-based position, or 0 if id is not ranked.
func (lb *Leaderboard) Rank(id int32) int {
	r := 1
	for x := lb.head.forward[0]; x != nil; x = x.forward[0] {
		if x.playerID == id {
			return r
		}
		r++
	}
	return 0
}

func (lb *Leaderboard) Len() int { return lb.size }

// Level reports the highest level currently linked, 0 when empty.
func (lb *Leaderboard) Level() int { return lb.level }

/******************** Internal helpers ********************/

// ranksAhead reports whether n sorts before the key (score, id).
func ranksAhead(n *node, score, id int32) bool {
	return n.score > score || (n.score == score && n.playerID < id)
}

// find scans level 0; the list is ordered by score, not id.
func (lb *Leaderboard) find(id int32) *node {
	for x := lb.head.forward[0]; x != nil; x = x.forward[0] {
		if x.playerID == id {
			return x
		}
	}
	return nil
}
