// Package inventory holds the stateless inventory calculations: splitting
// loot between two players, packing a bag, and counting the readings of a
// chat message mangled by the u/n autocorrect.
package inventory
