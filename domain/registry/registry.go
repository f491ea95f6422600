package registry

// DefaultCapacity is the slot count used by New. It is prime so the second
// hash is coprime with the table size and every probe cycle covers all slots.
const DefaultCapacity = 101

type slot struct {
	key      int32
	value    string
	occupied bool
}

// GrowthLoadFactor is the load factor a growing registry keeps below.
const GrowthLoadFactor = 0.7

// Registry maps player ids to display names.
// Not safe for concurrent use.
type Registry struct {
	slots []slot
	count int
	grow  bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithGrowth lets the table rehash into nextPrime(2C) slots instead of
// failing. It rehashes before an insert would push the load factor above
// GrowthLoadFactor. Capacity() then reports the current size.
func WithGrowth() Option {
	return func(r *Registry) { r.grow = true }
}

// New returns an empty registry with DefaultCapacity slots.
func New(opts ...Option) *Registry {
	return NewWithCapacity(DefaultCapacity, opts...)
}

// NewWithCapacity returns an empty registry with at least capacity slots.
// The size is rounded up to the next prime (minimum 2) so the second hash is
// coprime with it and every probe cycle visits all slots.
func NewWithCapacity(capacity int, opts ...Option) *Registry {
	r := &Registry{slots: make([]slot, nextPrime(capacity))}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Insert stores name under id, overwriting an existing name for the same id.
// A fixed-size table that is full returns ErrCapacityExceeded and is left
// unchanged.
func (r *Registry) Insert(id int32, name string) error {
	if r.grow && !r.Contains(id) &&
		float64(r.count+1)/float64(len(r.slots)) > GrowthLoadFactor {
		r.rehash()
	}
	return r.place(id, name)
}

func (r *Registry) place(id int32, name string) error {
	c := len(r.slots)
	h1, h2 := r.hashes(id)
	for i := 0; i < c; i++ {
		s := &r.slots[probe(h1, h2, i, c)]
		if !s.occupied {
			*s = slot{key: id, value: name, occupied: true}
			r.count++
			return nil
		}
		if s.key == id {
			s.value = name
			return nil
		}
	}
	return ErrCapacityExceeded
}

// Search returns the name stored for id, or "" if id was never inserted.
func (r *Registry) Search(id int32) string {
	c := len(r.slots)
	h1, h2 := r.hashes(id)
	for i := 0; i < c; i++ {
		s := &r.slots[probe(h1, h2, i, c)]
		if !s.occupied {
			return ""
		}
		if s.key == id {
			return s.value
		}
	}
	return ""
}

// Contains reports whether id has an entry.
func (r *Registry) Contains(id int32) bool {
	c := len(r.slots)
	h1, h2 := r.hashes(id)
	for i := 0; i < c; i++ {
		s := &r.slots[probe(h1, h2, i, c)]
		if !s.occupied {
			return false
		}
		if s.key == id {
			return true
		}
	}
	return false
}

func (r *Registry) Len() int      { return r.count }
func (r *Registry) Capacity() int { return len(r.slots) }

// LoadFactor is the fraction of occupied slots.
func (r *Registry) LoadFactor() float64 {
	return float64(r.count) / float64(len(r.slots))
}

/******************** Internal helpers ********************/

// rehash moves every entry into a table of nextPrime(2C) slots.
func (r *Registry) rehash() {
	old := r.slots
	r.slots = make([]slot, nextPrime(2*len(old)))
	r.count = 0
	for _, s := range old {
		if s.occupied {
			// The new table is larger than the entry count, so this cannot fail.
			_ = r.place(s.key, s.value)
		}
	}
}

// nextPrime returns the smallest prime >= n, and 2 for n < 2.
func nextPrime(n int) int {
	if n <= 2 {
		return 2
	}
	if n%2 == 0 {
		n++
	}
	for !isPrime(n) {
		n += 2
	}
	return n
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// hashes returns h1 = id mod C and h2 = 1 + id mod (C-1), both taken as
// non-negative remainders so negative ids probe inside the table.
func (r *Registry) hashes(id int32) (int, int) {
	c := int64(len(r.slots))
	k := int64(id)
	h1 := k % c
	if h1 < 0 {
		h1 += c
	}
	h2 := k % (c - 1)
	if h2 < 0 {
		h2 += c - 1
	}
	return int(h1), int(h2) + 1
}

func probe(h1, h2, i, c int) int {
	return int((int64(h1) + int64(i)*int64(h2)) % int64(c))
}
