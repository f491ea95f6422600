package kvindex

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

var errBadValue = errors.New("kvindex: invalid value length")

// Index maps ids to sort keys. Each id holds at most one key; Put replaces
// the previous key of the same id.
type Index struct {
	db   *pebble.DB
	keys map[int32][]byte
}

// OpenMem opens an index backed by pebble's in-memory filesystem.
// Nothing touches disk.
func OpenMem() (*Index, error) {
	db, err := pebble.Open("kvindex", &pebble.Options{
		FS:         vfs.NewMem(),
		DisableWAL: true,
	})
	if err != nil {
		return nil, fmt.Errorf("kvindex: open: %w", err)
	}
	return &Index{db: db, keys: make(map[int32][]byte)}, nil
}

func (x *Index) Close() error {
	return x.db.Close()
}

// -------------------- API --------------------

// Put stores key for id, dropping any key id held before.
func (x *Index) Put(id int32, key []byte) error {
	if old, ok := x.keys[id]; ok {
		if err := x.db.Delete(old, pebble.NoSync); err != nil {
			return err
		}
	}
	val := make([]byte, 4)
	binary.BigEndian.PutUint32(val, uint32(id))
	if err := x.db.Set(key, val, pebble.NoSync); err != nil {
		return err
	}
	x.keys[id] = append([]byte(nil), key...)
	return nil
}

// Delete removes id. Unknown ids are ignored.
func (x *Index) Delete(id int32) error {
	old, ok := x.keys[id]
	if !ok {
		return nil
	}
	delete(x.keys, id)
	return x.db.Delete(old, pebble.NoSync)
}

func (x *Index) Len() int { return len(x.keys) }

// -------------------- Scan --------------------

// Scan calls fn for each id in ascending key order. A non-nil error from fn
// stops the scan and is returned.
func (x *Index) Scan(fn func(id int32) error) error {
	iter, err := x.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		val := iter.Value()
		if len(val) != 4 {
			return errBadValue
		}
		if err := fn(int32(binary.BigEndian.Uint32(val))); err != nil {
			return err
		}
	}
	return iter.Error()
}

// IDs returns every id in ascending key order.
func (x *Index) IDs() ([]int32, error) {
	out := make([]int32, 0, len(x.keys))
	err := x.Scan(func(id int32) error {
		out = append(out, id)
		return nil
	})
	return out, err
}

// -------------------- Keys --------------------

// ordered maps a signed value onto an unsigned one with the same ordering.
func ordered(v int32) uint32 {
	return uint32(v) ^ 0x80000000
}

// ScoreDescKey sorts by score descending, then id ascending.
func ScoreDescKey(score, id int32) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint32(b[0:4], ^ordered(score))
	binary.BigEndian.PutUint32(b[4:8], ordered(id))
	return b
}

// PriceAscKey sorts by price ascending, then id ascending.
func PriceAscKey(price, id int32) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint32(b[0:4], ordered(price))
	binary.BigEndian.PutUint32(b[4:8], ordered(id))
	return b
}
