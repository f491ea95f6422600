package auction

type color uint8

const (
	red   color = 0
	black color = 1
)

type node struct {
	itemID int32
	price  int32
	color  color
	left   handle
	right  handle
	parent handle
}

// Item is a copy of one listed item.
type Item struct {
	ItemID int32
	Price  int32
}

// Index orders listed items by price, then item id.
// Not safe for concurrent use.
type Index struct {
	arena
	root handle
	size int
}

// New returns an empty index.
func New() *Index {
	return &Index{arena: newArena(), root: sentinel}
}

func (t *Index) Len() int { return t.size }

// InsertItem lists id at price. An id that is already listed is delisted
// first, so it moves to its new position.
func (t *Index) InsertItem(id, price int32) {
	if z := t.findByID(id); z != sentinel {
		t.deleteNode(z)
		t.size--
	}

	y := sentinel
	x := t.root
	for x != sentinel {
		y = x
		if less(price, id, t.n(x)) {
			x = t.n(x).left
		} else {
			x = t.n(x).right
		}
	}

	z := t.alloc(id, price, y)
	if y == sentinel {
		t.root = z
	} else if less(price, id, t.n(y)) {
		t.n(y).left = z
	} else {
		t.n(y).right = z
	}
	t.insertFixup(z)
	t.size++
}

// DeleteItem delists id. Unknown ids are a no-op.
func (t *Index) DeleteItem(id int32) {
	z := t.findByID(id)
	if z == sentinel {
		return
	}
	t.deleteNode(z)
	t.size--
}

// Price returns the listed price of id.
func (t *Index) Price(id int32) (int32, bool) {
	z := t.findByID(id)
	if z == sentinel {
		return 0, false
	}
	return t.n(z).price, true
}

// Cheapest returns the lowest (price, id) item.
func (t *Index) Cheapest() (Item, bool) {
	n := t.minNode(t.root)
	if n == sentinel {
		return Item{}, false
	}
	return t.item(n), true
}

// MostExpensive returns the highest (price, id) item.
func (t *Index) MostExpensive() (Item, bool) {
	n := t.maxNode(t.root)
	if n == sentinel {
		return Item{}, false
	}
	return t.item(n), true
}

// Ascend calls fn for each item in (price, id) order until fn returns false.
// fn must not modify the index.
func (t *Index) Ascend(fn func(Item) bool) {
	for n := t.minNode(t.root); n != sentinel; n = t.next(n) {
		if !fn(t.item(n)) {
			return
		}
	}
}

// Descend is Ascend in reverse order.
func (t *Index) Descend(fn func(Item) bool) {
	for n := t.maxNode(t.root); n != sentinel; n = t.prev(n) {
		if !fn(t.item(n)) {
			return
		}
	}
}

// InOrder returns item ids in (price, id) order.
func (t *Index) InOrder() []int32 {
	out := make([]int32, 0, t.size)
	t.Ascend(func(it Item) bool {
		out = append(out, it.ItemID)
		return true
	})
	return out
}

// Items returns every item in (price, id) order.
func (t *Index) Items() []Item {
	out := make([]Item, 0, t.size)
	t.Ascend(func(it Item) bool {
		out = append(out, it)
		return true
	})
	return out
}

// PriceRange returns the items priced within [lo, hi], cheapest first.
func (t *Index) PriceRange(lo, hi int32) []Item {
	out := []Item{}
	if lo > hi {
		return out
	}
	for n := t.ceiling(lo); n != sentinel && t.n(n).price <= hi; n = t.next(n) {
		out = append(out, t.item(n))
	}
	return out
}

// Clear drops every item and the arena backing them.
func (t *Index) Clear() {
	t.reset()
	t.root = sentinel
	t.size = 0
}

/******************** Internal helpers ********************/

func (t *Index) n(h handle) *node { return &t.nodes[h] }

func (t *Index) item(h handle) Item {
	n := t.n(h)
	return Item{ItemID: n.itemID, Price: n.price}
}

// less reports whether (price, id) sorts before n.
func less(price, id int32, n *node) bool {
	if price != n.price {
		return price < n.price
	}
	return id < n.itemID
}

// findByID walks the whole tree; the ordering says nothing about ids alone.
func (t *Index) findByID(id int32) handle {
	if t.root == sentinel {
		return sentinel
	}
	stack := []handle{t.root}
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.n(h)
		if n.itemID == id {
			return h
		}
		if n.left != sentinel {
			stack = append(stack, n.left)
		}
		if n.right != sentinel {
			stack = append(stack, n.right)
		}
	}
	return sentinel
}

// ceiling returns the first node with price >= p.
func (t *Index) ceiling(p int32) handle {
	x := t.root
	best := sentinel
	for x != sentinel {
		if t.n(x).price >= p {
			best = x
			x = t.n(x).left
		} else {
			x = t.n(x).right
		}
	}
	return best
}

func (t *Index) minNode(h handle) handle {
	if h == sentinel {
		return sentinel
	}
	for t.n(h).left != sentinel {
		h = t.n(h).left
	}
	return h
}

func (t *Index) maxNode(h handle) handle {
	if h == sentinel {
		return sentinel
	}
	for t.n(h).right != sentinel {
		h = t.n(h).right
	}
	return h
}

func (t *Index) next(h handle) handle {
	if t.n(h).right != sentinel {
		return t.minNode(t.n(h).right)
	}
	p := t.n(h).parent
	for p != sentinel && h == t.n(p).right {
		h = p
		p = t.n(p).parent
	}
	return p
}

func (t *Index) prev(h handle) handle {
	if t.n(h).left != sentinel {
		return t.maxNode(t.n(h).left)
	}
	p := t.n(h).parent
	for p != sentinel && h == t.n(p).left {
		h = p
		p = t.n(p).parent
	}
	return p
}

func (t *Index) leftRotate(x handle) {
	xn := t.n(x)
	y := xn.right
	yn := t.n(y)
	xn.right = yn.left
	if yn.left != sentinel {
		t.n(yn.left).parent = x
	}
	yn.parent = xn.parent
	if xn.parent == sentinel {
		t.root = y
	} else if x == t.n(xn.parent).left {
		t.n(xn.parent).left = y
	} else {
		t.n(xn.parent).right = y
	}
	yn.left = x
	xn.parent = y
}

func (t *Index) rightRotate(y handle) {
	yn := t.n(y)
	x := yn.left
	xn := t.n(x)
	yn.left = xn.right
	if xn.right != sentinel {
		t.n(xn.right).parent = y
	}
	xn.parent = yn.parent
	if yn.parent == sentinel {
		t.root = x
	} else if y == t.n(yn.parent).right {
		t.n(yn.parent).right = x
	} else {
		t.n(yn.parent).left = x
	}
	xn.right = y
	yn.parent = x
}

func (t *Index) insertFixup(z handle) {
	for t.n(t.n(z).parent).color == red {
		p := t.n(z).parent
		g := t.n(p).parent
		if p == t.n(g).left {
			y := t.n(g).right
			if t.n(y).color == red {
				t.n(p).color = black
				t.n(y).color = black
				t.n(g).color = red
				z = g
			} else {
				if z == t.n(p).right {
					z = p
					t.leftRotate(z)
				}
				p = t.n(z).parent
				g = t.n(p).parent
				t.n(p).color = black
				t.n(g).color = red
				t.rightRotate(g)
			}
		} else {
			y := t.n(g).left
			if t.n(y).color == red {
				t.n(p).color = black
				t.n(y).color = black
				t.n(g).color = red
				z = g
			} else {
				if z == t.n(p).left {
					z = p
					t.rightRotate(z)
				}
				p = t.n(z).parent
				g = t.n(p).parent
				t.n(p).color = black
				t.n(g).color = red
				t.leftRotate(g)
			}
		}
	}
	t.n(t.root).color = black
}

func (t *Index) transplant(u, v handle) {
	up := t.n(u).parent
	if up == sentinel {
		t.root = v
	} else if u == t.n(up).left {
		t.n(up).left = v
	} else {
		t.n(up).right = v
	}
	t.n(v).parent = up
}

func (t *Index) deleteNode(z handle) {
	zn := t.n(z)
	y := z
	yOrigColor := zn.color
	var x handle

	if zn.left == sentinel {
		x = zn.right
		t.transplant(z, zn.right)
	} else if zn.right == sentinel {
		x = zn.left
		t.transplant(z, zn.left)
	} else {
		y = t.minNode(zn.right)
		yn := t.n(y)
		yOrigColor = yn.color
		x = yn.right
		if yn.parent == z {
			t.n(x).parent = y
		} else {
			t.transplant(y, yn.right)
			yn.right = zn.right
			t.n(yn.right).parent = y
		}
		t.transplant(z, y)
		yn.left = zn.left
		t.n(yn.left).parent = y
		yn.color = zn.color
	}

	if yOrigColor == black {
		t.deleteFixup(x)
	}
	t.n(sentinel).parent = sentinel
	t.release(z)
}

func (t *Index) deleteFixup(x handle) {
	for x != t.root && t.n(x).color == black {
		p := t.n(x).parent
		if x == t.n(p).left {
			w := t.n(p).right
			if t.n(w).color == red {
				t.n(w).color = black
				t.n(p).color = red
				t.leftRotate(p)
				w = t.n(p).right
			}
			if t.n(t.n(w).left).color == black && t.n(t.n(w).right).color == black {
				t.n(w).color = red
				x = p
			} else {
				if t.n(t.n(w).right).color == black {
					t.n(t.n(w).left).color = black
					t.n(w).color = red
					t.rightRotate(w)
					w = t.n(p).right
				}
				t.n(w).color = t.n(p).color
				t.n(p).color = black
				t.n(t.n(w).right).color = black
				t.leftRotate(p)
				x = t.root
			}
		} else {
			w := t.n(p).left
			if t.n(w).color == red {
				t.n(w).color = black
				t.n(p).color = red
				t.rightRotate(p)
				w = t.n(p).left
			}
			if t.n(t.n(w).right).color == black && t.n(t.n(w).left).color == black {
				t.n(w).color = red
				x = p
			} else {
				if t.n(t.n(w).left).color == black {
					t.n(t.n(w).right).color = black
					t.n(w).color = red
					t.leftRotate(w)
					w = t.n(p).left
				}
				t.n(w).color = t.n(p).color
				t.n(p).color = black
				t.n(t.n(w).left).color = black
				t.rightRotate(p)
				x = t.root
			}
		}
	}
	t.n(x).color = black
}
