// internal/sched/event.go

package sched

// SliceKind tells how a dispatch ended.
type SliceKind int

const (
	SliceFinish SliceKind = iota
	SlicePreempt
)

// Slice is one contiguous stretch of CPU time given to a process.
// A run records one per dispatch, in time order.
type Slice struct {
	PID   string    `json:"pid"`
	Start int       `json:"start"`
	Stop  int       `json:"stop"`
	Kind  SliceKind `json:"event"`
}

// Ran returns the number of time units the slice covers.
func (s Slice) Ran() int { return s.Stop - s.Start }

func (sk SliceKind) String() string {
	switch sk {
	case SliceFinish:
		return "Finish"
	case SlicePreempt:
		return "Preempt"
	default:
		return "Unknown"
	}
}

func (sk SliceKind) MarshalText() ([]byte, error) {
	return []byte(sk.String()), nil
}
