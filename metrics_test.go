package avl

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsTrackMutations(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	tr := New(WithMetrics(m))

	tr.Set(10, "a").Set(5, "b").Set(3, "c") // third insert rotates
	tr.Set(10, "z")                         // update, no size change
	tr.Delete(3)
	tr.Delete(99) // absent, still counted as an operation

	assert.Equal(t, 4.0, testutil.ToFloat64(m.Sets))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Deletes))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rotations))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.TreeSize))
	assert.Equal(t, float64(tr.Height()), testutil.ToFloat64(m.TreeHeight))
}

func TestMetricsNilRegisterer(t *testing.T) {
	m := NewMetrics(nil)
	tr := New(WithMetrics(m))

	tr.Set(1, nil)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TreeSize))
}

func TestMetricsRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)

	families, err := reg.Gather()
	assert.NoError(t, err)
	assert.Len(t, families, 5)
}
