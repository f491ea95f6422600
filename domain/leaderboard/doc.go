// Package leaderboard implements the score ranking as a probabilistic skip
// list.
//
// Players are ordered by score descending, ties broken by player id
// ascending. A score update removes the player's node and inserts a fresh
// one with a newly drawn level.
package leaderboard
