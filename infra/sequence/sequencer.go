package sequence

import (
	"log/slog"
	"strconv"
	"sync/atomic"
)

// Seq is the number an arcade command was issued under. Zero means no
// command has run yet.
type Seq uint64

func (s Seq) String() string { return strconv.FormatUint(uint64(s), 10) }

// LogValue renders s as a plain integer in structured logs.
func (s Seq) LogValue() slog.Value { return slog.Uint64Value(uint64(s)) }

// Attr is the "seq" log attribute every command log line carries.
func (s Seq) Attr() slog.Attr { return slog.Any("seq", s) }

// Sequencer hands out Seq values. The first value issued is one above the
// start the sequencer was built with; later values each add one.
type Sequencer struct {
	last atomic.Uint64
}

func New(start Seq) *Sequencer {
	s := &Sequencer{}
	s.last.Store(uint64(start))
	return s
}

// Next issues the number for a new command.
func (s *Sequencer) Next() Seq {
	return Seq(s.last.Add(1))
}

// Current returns the last issued number, or the start value if none.
func (s *Sequencer) Current() Seq {
	return Seq(s.last.Load())
}
