// internal/sched/order.go

package sched

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// ByBurstLength returns the processes ordered by ascending original burst.
// Equal bursts keep their input order. The input slice is not modified.
func ByBurstLength(procs []*Process) []*Process {
	return orderBy(procs, func(p *Process) int { return p.Burst() })
}

// ByPriority returns the processes ordered by ascending Priority value:
// a smaller number is scheduled earlier, so priority 1 runs before priority 2.
// Equal priorities keep their input order. The input slice is not modified.
func ByPriority(procs []*Process) []*Process {
	return orderBy(procs, func(p *Process) int { return p.Priority() })
}

// orderBy inserts every process into a red-black tree keyed by (key, input index)
// and reads the tree back in order.
func orderBy(procs []*Process, key func(*Process) int) []*Process {
	rbt := redblacktree.NewWith(cmp)
	for i, p := range procs {
		rbt.Put(nodeKey{key: key(p), seq: i}, p)
	}

	out := make([]*Process, 0, len(procs))
	for _, v := range rbt.Values() {
		out = append(out, v.(*Process))
	}
	return out
}

// nodeKey orders processes by their policy value first and by where they
// appeared in the input second. No two processes share a seq, so the order is
// total and equal policy values come out in input order.
type nodeKey struct {
	key int
	seq int
}

// cmp compares two nodeKeys: policy value, then input position.
func cmp(a, b any) int {
	ka, kb := a.(nodeKey), b.(nodeKey)
	if ka.key != kb.key {
		return compareInt(ka.key, kb.key)
	}
	return compareInt(ka.seq, kb.seq)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
