// Package kernel schedules server tasks that need a cool-down between two
// runs of the same kind.
package kernel
