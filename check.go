package avl

import (
	"fmt"
)

// Check verifies the structural invariants of the whole tree: strict key
// ordering, cached height correctness, balance factors within [-1, 1] and
// agreement between the node count and Size. It returns nil for a valid
// tree and an error wrapping ErrInvariant otherwise.
//
// Every public mutation maintains these invariants; Check exists for tests
// and for debugging code that reaches into the structure.
func (t *tree) Check() error {
	n, err := checkSubtree(t.root, nil, nil)
	if err != nil {
		return err
	}
	if n != t.size {
		return fmt.Errorf("%w: %d reachable nodes but size is %d", ErrInvariant, n, t.size)
	}
	return nil
}

// checkSubtree validates the subtree at n against the exclusive key bounds
// (lo, hi), nil meaning unbounded, and returns the number of nodes seen.
func checkSubtree(n *node, lo, hi *int) (int, error) {
	if n == nil {
		return 0, nil
	}

	if lo != nil && n.key <= *lo {
		return 0, fmt.Errorf("%w: key %d not above left bound %d", ErrInvariant, n.key, *lo)
	}
	if hi != nil && n.key >= *hi {
		return 0, fmt.Errorf("%w: key %d not below right bound %d", ErrInvariant, n.key, *hi)
	}

	nl, err := checkSubtree(n.left, lo, &n.key)
	if err != nil {
		return 0, err
	}
	nr, err := checkSubtree(n.right, &n.key, hi)
	if err != nil {
		return 0, err
	}

	if want := max(height(n.left), height(n.right)) + 1; n.height != want {
		return 0, fmt.Errorf("%w: node %d caches height %d, want %d", ErrInvariant, n.key, n.height, want)
	}
	if bf := n.balanceFactor(); bf < -1 || bf > 1 {
		return 0, fmt.Errorf("%w: node %d has balance factor %d", ErrInvariant, n.key, bf)
	}

	return nl + nr + 1, nil
}
