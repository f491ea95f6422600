// Package registry implements the player name registry: a fixed-capacity
// open-addressing hash table keyed by player id.
//
// Collisions are resolved with double hashing over a prime table size.
// Entries are never removed. By default the table never grows: once every
// slot is taken, inserting a new id fails with ErrCapacityExceeded and the
// existing entries are untouched. WithGrowth opts into rehashing instead.
package registry
