package registry

import "errors"

// ErrCapacityExceeded is returned by Insert when the probe sequence for a new
// id visits every slot without finding a free one.
var ErrCapacityExceeded = errors.New("registry: table is full")
