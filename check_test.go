package avl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckValidTree(t *testing.T) {
	tr := New()
	for _, k := range []int{5, 2, 8, 1, 3, 7, 9} {
		tr.Set(k, nil)
	}
	assert.NoError(t, tr.Check())
}

func TestCheckDetectsStaleHeight(t *testing.T) {
	tr := New().Set(10, nil).Set(5, nil).Set(15, nil)

	rootOf(tr).height = 42
	err := tr.Check()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvariant)
	assert.Contains(t, err.Error(), "height")
}

func TestCheckDetectsOrderViolation(t *testing.T) {
	tr := New().Set(10, nil).Set(5, nil).Set(15, nil)

	r := rootOf(tr)
	r.left.key, r.right.key = r.right.key, r.left.key
	err := tr.Check()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvariant)
}

func TestCheckDetectsImbalance(t *testing.T) {
	// hand-built left spine that no public operation would produce
	tr := New().(*tree)
	tr.root = &node{key: 3, height: 3,
		left: &node{key: 2, height: 2,
			left: &node{key: 1, height: 1},
		},
	}
	tr.size = 3

	err := tr.Check()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvariant)
	assert.Contains(t, err.Error(), "balance factor")
}

func TestCheckDetectsSizeMismatch(t *testing.T) {
	tr := New().Set(1, nil).Set(2, nil).(*tree)

	tr.size = 5
	err := tr.Check()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvariant)
}

func TestDumpRendersEveryKey(t *testing.T) {
	tr := New().Set(10, "a").Set(5, "b").Set(15, "c")

	var bf bytes.Buffer
	tr.Dump(&bf)
	out := bf.String()

	for _, want := range []string{"10", "5", "15"} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestDumpEmpty(t *testing.T) {
	var bf bytes.Buffer
	New().Dump(&bf)
	assert.Equal(t, "(empty)\n", bf.String())
}
