// Package service composes the player registry, leaderboard and auction
// index behind one arcade facade.
//
// Arcade is the single writer for all three structures. It numbers every
// command, logs it and records metrics before delegating to the domain
// packages. It does not make the structures agree with each other: a player
// may hold a score without a registered name, and an item id carries no
// owner.
package service
