package sched

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ids(procs []*Process) []string {
	out := make([]string, len(procs))
	for i, p := range procs {
		out[i] = p.ID()
	}
	return out
}

func TestByBurstLength(t *testing.T) {
	procs := []*Process{
		NewProcess("a", 0, 4),
		NewProcess("b", 0, 1),
		NewProcess("c", 0, 4),
		NewProcess("d", 0, 0),
		NewProcess("e", 0, 1),
	}

	assert.Equal(t, []string{"d", "b", "e", "a", "c"}, ids(ByBurstLength(procs)))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(procs), "input must be untouched")
}

func TestByPriority(t *testing.T) {
	procs := []*Process{
		NewProcess("a", 3, 1),
		NewProcess("b", 1, 1),
		NewProcess("c", -2, 1),
		NewProcess("d", 1, 1),
		NewProcess("e", 3, 1),
	}

	// smaller number first; -2 is the most urgent
	assert.Equal(t, []string{"c", "b", "d", "a", "e"}, ids(ByPriority(procs)))
}

func TestOrdering_Empty(t *testing.T) {
	assert.Empty(t, ByBurstLength(nil))
	assert.Empty(t, ByPriority(nil))
}

func TestCmp(t *testing.T) {
	tests := []struct {
		a, b nodeKey
		want int
	}{
		{nodeKey{1, 0}, nodeKey{2, 0}, -1},
		{nodeKey{2, 0}, nodeKey{1, 5}, 1},
		{nodeKey{2, 1}, nodeKey{2, 3}, -1},
		{nodeKey{2, 3}, nodeKey{2, 1}, 1},
		{nodeKey{2, 3}, nodeKey{2, 3}, 0},
		{nodeKey{math.MinInt, 0}, nodeKey{math.MaxInt, 1}, -1},
		{nodeKey{math.MaxInt, 0}, nodeKey{math.MinInt, 1}, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cmp(tt.a, tt.b), "%+v vs %+v", tt.a, tt.b)
	}
}
