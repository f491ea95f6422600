package leaderboard

import (
	"math/rand"
	"time"
)

// DefaultMaxLevel bounds node height. Levels run 0..DefaultMaxLevel-1.
const DefaultMaxLevel = 4

// Option configures a Leaderboard.
type Option func(*Leaderboard)

// WithMaxLevel sets the number of levels. Values below 1 are ignored.
func WithMaxLevel(n int) Option {
	return func(lb *Leaderboard) {
		if n >= 1 {
			lb.maxLevel = n
		}
	}
}

// WithSource makes level generation draw from src, so tests can replay a
// fixed tower layout.
func WithSource(src rand.Source) Option {
	return func(lb *Leaderboard) {
		lb.rnd = rand.New(src)
	}
}

// WithSeed is WithSource over rand.NewSource(seed).
func WithSeed(seed int64) Option {
	return WithSource(rand.NewSource(seed))
}

// randomLevel flips a fair coin until tails or the cap, so level k is drawn
// with probability 2^-(k+1).
func (lb *Leaderboard) randomLevel() int {
	lvl := 0
	for lvl < lb.maxLevel-1 && lb.rnd.Intn(2) == 0 {
		lvl++
	}
	return lvl
}

func defaultRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
