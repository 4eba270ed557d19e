package avl

// Set inserts key with the given value, or overwrites the value in place
// when the key is already present. An overwrite is not a structural change
// and triggers no rebalancing.
func (t *tree) Set(key int, value any) Tree {
	var added bool
	t.root, added = t.setRecursive(t.root, key, value)
	if added {
		t.size++
	}
	if t.metrics != nil {
		t.metrics.Sets.Inc()
		t.observe()
	}
	return t
}

// setRecursive descends to the key's position, then rebalances on the way
// back up. The boolean reports whether a new node was created, as opposed
// to an in-place update of an existing key.
func (t *tree) setRecursive(n *node, key int, value any) (*node, bool) {
	if n == nil {
		t.log.Debug().Int("key", key).Msg("insert")
		return &node{key: key, value: value, height: 1}, true
	}

	var added bool
	switch {
	case key < n.key:
		n.left, added = t.setRecursive(n.left, key, value)
	case key > n.key:
		n.right, added = t.setRecursive(n.right, key, value)
	default:
		n.value = value
		return n, false
	}

	if !added {
		return n, false
	}
	return t.rebalance(n), true
}

// Delete removes key from the tree. Deleting an absent key is a no-op and
// leaves the tree untouched, heights included.
func (t *tree) Delete(key int) Tree {
	var removed bool
	t.root, removed = t.deleteRecursive(t.root, key)
	if removed {
		t.size--
		t.log.Debug().Int("key", key).Msg("delete")
	}
	if t.metrics != nil {
		t.metrics.Deletes.Inc()
		t.observe()
	}
	return t
}

func (t *tree) deleteRecursive(n *node, key int) (*node, bool) {
	if n == nil {
		// not present, nothing to do
		return nil, false
	}

	var removed bool
	switch {
	case key < n.key:
		n.left, removed = t.deleteRecursive(n.left, key)
	case key > n.key:
		n.right, removed = t.deleteRecursive(n.right, key)
	default:
		switch {
		case n.left == nil:
			return n.right, true
		case n.right == nil:
			return n.left, true
		default:
			// Two children: the in-order successor (leftmost node of
			// the right subtree) replaces this node's payload, then the
			// successor itself is deleted from the right subtree. The
			// successor has no left child, so that deletion hits one of
			// the simple cases above.
			succ := n.right.min()
			n.key = succ.key
			n.value = succ.value
			n.right, _ = t.deleteRecursive(n.right, succ.key)
			removed = true
		}
	}

	if !removed {
		return n, false
	}
	return t.rebalance(n), true
}

// Get returns the value stored under key and whether the key is present.
func (t *tree) Get(key int) (any, bool) {
	if n := t.lookup(key); n != nil {
		return n.value, true
	}
	return nil, false
}

// GetOr returns the value stored under key, or fallback when absent.
func (t *tree) GetOr(key int, fallback any) any {
	if n := t.lookup(key); n != nil {
		return n.value
	}
	return fallback
}

// Find reports whether key is present.
func (t *tree) Find(key int) bool {
	return t.lookup(key) != nil
}

func (t *tree) lookup(key int) *node {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Items returns every key/value pair in ascending key order.
func (t *tree) Items() []Item {
	items := make([]Item, 0, t.size)
	t.root.appendInorder(&items)
	return items
}

func (n *node) appendInorder(items *[]Item) {
	if n == nil {
		return
	}
	n.left.appendInorder(items)
	*items = append(*items, Item{Key: n.key, Value: n.value})
	n.right.appendInorder(items)
}

// Min returns the smallest key/value pair, or false for an empty tree.
func (t *tree) Min() (Item, bool) {
	if t.root == nil {
		return Item{}, false
	}
	n := t.root.min()
	return Item{Key: n.key, Value: n.value}, true
}

// Max returns the largest key/value pair, or false for an empty tree.
func (t *tree) Max() (Item, bool) {
	if t.root == nil {
		return Item{}, false
	}
	n := t.root.max()
	return Item{Key: n.key, Value: n.value}, true
}

// Size returns the number of keys in the tree.
func (t *tree) Size() int {
	return t.size
}

// Height returns the height of the tree, 0 when empty.
func (t *tree) Height() int {
	return height(t.root)
}

func (t *tree) observe() {
	t.metrics.TreeSize.Set(float64(t.size))
	t.metrics.TreeHeight.Set(float64(height(t.root)))
}
