package avl

// Iterator returns an in-order iterator positioned before the smallest key.
func (t *tree) Iterator() Iterator {
	it := &iterator{stack: make([]*node, 0, height(t.root))}
	it.descendLeft(t.root)
	return it
}

// descendLeft stacks n and its chain of left children, so that the top of
// the stack is always the next item in key order.
func (it *iterator) descendLeft(n *node) {
	for n != nil {
		it.stack = append(it.stack, n)
		n = n.left
	}
}

func (it *iterator) HasNext() bool {
	return it != nil && len(it.stack) > 0
}

func (it *iterator) Next() (Item, error) {
	if !it.HasNext() {
		return Item{}, ErrNoMoreItems
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.descendLeft(n.right)
	return Item{Key: n.key, Value: n.value}, nil
}
