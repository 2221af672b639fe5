package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProcess(t *testing.T) {
	p := NewProcess("P1", 4, 7)

	assert.Equal(t, "P1", p.ID())
	assert.Equal(t, 4, p.Priority())
	assert.Equal(t, 7, p.Burst())
	assert.Equal(t, 7, p.Remaining())
	assert.Zero(t, p.Wait())
	assert.Equal(t, StatusNew, p.Status())
	assert.Equal(t, 7, p.Turnaround())
	assert.False(t, p.started())
}

func TestNewProcess_NegativeBurst(t *testing.T) {
	p := NewProcess("P1", 0, -3)
	assert.Zero(t, p.Burst())
	assert.Zero(t, p.Remaining())
}

func TestProcess_RunNeverOverdraws(t *testing.T) {
	p := NewProcess("P1", 0, 5)

	assert.Equal(t, 3, p.run(3))
	assert.Equal(t, 2, p.Remaining())
	assert.Equal(t, 2, p.run(3))
	assert.Zero(t, p.Remaining())
	assert.Equal(t, 5, p.Burst())
}

func TestProcess_SettleWait(t *testing.T) {
	p := NewProcess("P1", 0, 5)
	p.addWait(4)
	p.addWait(9)
	assert.Equal(t, 13, p.Wait())

	p.settleWait(12)
	assert.Equal(t, 7, p.Wait())
	assert.Equal(t, 12, p.Turnaround())
}

func TestProcess_StatusIsSettable(t *testing.T) {
	p := NewProcess("P1", 0, 1)
	p.SetStatus(StatusWaiting)
	assert.Equal(t, StatusWaiting, p.Status())
	assert.Equal(t, "WAITING", p.Status().String())
}

func TestProcess_Reset(t *testing.T) {
	p := NewProcess("P1", 0, 5)
	p.addWait(3)
	p.run(5)
	p.finish()
	assert.True(t, p.started())

	p.Reset()
	assert.Equal(t, 5, p.Remaining())
	assert.Zero(t, p.Wait())
	assert.Equal(t, StatusNew, p.Status())
	assert.False(t, p.started())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "NEW", StatusNew.String())
	assert.Equal(t, "READY", StatusReady.String())
	assert.Equal(t, "RUNNING", StatusRunning.String())
	assert.Equal(t, "TERMINATED", StatusTerminated.String())
	assert.Equal(t, "UNKNOWN", Status(99).String())
}

func TestClock(t *testing.T) {
	var c Clock
	assert.Zero(t, c.Now())
	assert.Equal(t, 3, c.Advance(3))
	assert.Equal(t, 3, c.Advance(0))
	assert.Equal(t, 3, c.Advance(-2))
	assert.Equal(t, 3, c.Now())
}
