// Package auction implements the auction house price index: a red-black
// tree ordered by (price, item id).
//
// Nodes live in an arena slice and refer to each other by handle. Handle 0
// is the shared black sentinel that stands in for every leaf and for the
// root's parent. Released handles are recycled by later inserts.
package auction
