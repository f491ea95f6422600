// Package navigator answers the world-map questions: whether two cities are
// connected, the cheapest set of roads that keeps every reachable city
// connected, and the total of all shortest travel distances.
//
// Cities are numbered 0..n-1 and every road is two-way.
package navigator
