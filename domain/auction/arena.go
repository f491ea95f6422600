package auction

type handle uint32

// sentinel is the arena slot every leaf points at. It is always black.
const sentinel handle = 0

type arena struct {
	nodes []node
	free  []handle
}

func newArena() arena {
	return arena{nodes: []node{{color: black}}}
}

// alloc returns a red node with sentinel links. The returned handle stays
// valid until release; pointers into the slice do not survive an alloc.
func (a *arena) alloc(itemID, price int32, parent handle) handle {
	n := node{
		itemID: itemID,
		price:  price,
		color:  red,
		left:   sentinel,
		right:  sentinel,
		parent: parent,
	}
	if k := len(a.free); k > 0 {
		h := a.free[k-1]
		a.free = a.free[:k-1]
		a.nodes[h] = n
		return h
	}
	a.nodes = append(a.nodes, n)
	return handle(len(a.nodes) - 1)
}

func (a *arena) release(h handle) {
	a.nodes[h] = node{}
	a.free = append(a.free, h)
}

func (a *arena) reset() {
	a.nodes = a.nodes[:1]
	a.nodes[0] = node{color: black}
	a.free = a.free[:0]
}
