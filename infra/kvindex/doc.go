// Package kvindex keeps an id-to-sort-key mapping in an in-memory pebble
// database and replays the ids in byte order of their keys.
//
// It is the reference ordering the leaderboard and auction indexes are
// checked against: both structures must yield exactly the order pebble's
// iterator produces for the same composite keys.
package kvindex
