package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	procs := abc()
	procs[0].addWait(2)
	procs[1].addWait(10)

	s, err := Summarize(procs)
	require.NoError(t, err)

	require.Len(t, s.Rows, 3)
	assert.Equal(t, "A", s.Rows[0].ID)
	assert.Equal(t, 7, s.Rows[0].Turnaround)
	assert.Equal(t, 13, s.Rows[1].Turnaround)
	assert.Equal(t, 8, s.Rows[2].Turnaround)
	assert.InDelta(t, 28.0/3.0, s.AvgTurnaround, 1e-9)
	assert.InDelta(t, 4.0, s.AvgWait, 1e-9)
}

func TestSummarize_AveragesAreMeans(t *testing.T) {
	for _, alg := range Algorithms {
		r := run(t, alg, 3, mixed())

		var ta, w float64
		for _, row := range r.Summary.Rows {
			assert.Equal(t, row.Burst+row.Wait, row.Turnaround)
			ta += float64(row.Turnaround)
			w += float64(row.Wait)
		}
		n := float64(len(r.Summary.Rows))
		assert.InDelta(t, ta/n, r.Summary.AvgTurnaround, 1e-9, alg.String())
		assert.InDelta(t, w/n, r.Summary.AvgWait, 1e-9, alg.String())
	}
}

func TestSummarize_Empty(t *testing.T) {
	_, err := Summarize(nil)
	assert.ErrorIs(t, err, ErrNoProcesses)
}
