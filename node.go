package avl

// height returns the cached height of a subtree, 0 for an empty position.
func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

// update recomputes the cached height from the children.
func (n *node) update() {
	n.height = max(height(n.left), height(n.right)) + 1
}

// balanceFactor is height(left) - height(right). Values outside [-1, 1]
// mean the node needs a rotation.
func (n *node) balanceFactor() int {
	return height(n.left) - height(n.right)
}

// min returns the leftmost node of a non-empty subtree.
func (n *node) min() *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the rightmost node of a non-empty subtree.
func (n *node) max() *node {
	for n.right != nil {
		n = n.right
	}
	return n
}

// rotateLeft makes the right child the new subtree root and returns it.
// Only the two nodes involved get their heights recomputed.
func (t *tree) rotateLeft(n *node) *node {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	n.update()
	pivot.update()

	t.log.Debug().Int("key", n.key).Int("pivot", pivot.key).Msg("rotate left")
	if t.metrics != nil {
		t.metrics.Rotations.Inc()
	}
	return pivot
}

// rotateRight makes the left child the new subtree root and returns it.
func (t *tree) rotateRight(n *node) *node {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	n.update()
	pivot.update()

	t.log.Debug().Int("key", n.key).Int("pivot", pivot.key).Msg("rotate right")
	if t.metrics != nil {
		t.metrics.Rotations.Inc()
	}
	return pivot
}

// rebalance refreshes the height of n and, if its balance factor left the
// range [-1, 1], applies the matching single or double rotation. Called on
// the unwind of every structural insert or delete.
func (t *tree) rebalance(n *node) *node {
	n.update()

	if bf := n.balanceFactor(); bf > 1 {
		if n.left.balanceFactor() < 0 {
			// left-right case
			n.left = t.rotateLeft(n.left)
		}
		return t.rotateRight(n)
	} else if bf < -1 {
		if n.right.balanceFactor() > 0 {
			// right-left case
			n.right = t.rotateRight(n.right)
		}
		return t.rotateLeft(n)
	}

	return n
}
