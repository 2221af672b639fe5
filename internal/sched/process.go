package sched

// Status is the informational lifecycle state of a process.
type Status int

const (
	StatusNew Status = iota
	StatusReady
	StatusRunning
	StatusWaiting
	StatusTerminated
)

func (s Status) String() string {
	switch s {
	case StatusNew:
		return "NEW"
	case StatusReady:
		return "READY"
	case StatusRunning:
		return "RUNNING"
	case StatusWaiting:
		return "WAITING"
	case StatusTerminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}

// Process represents one schedulable unit of CPU work.
type Process struct {
	id        string
	priority  int // lower number is more urgent
	burst     int // original burst, never changes after NewProcess
	remaining int
	wait      int
	status    Status
	done      bool
}

// NewProcess creates a process in the NEW state with its full burst remaining.
// NOTE: a negative burst is treated as zero; loaders reject negative input before this point.
func NewProcess(id string, priority, burst int) *Process {
	if burst < 0 {
		burst = 0
	}

	return &Process{
		id:        id,
		priority:  priority,
		burst:     burst,
		remaining: burst,
		status:    StatusNew,
	}
}

func (p *Process) ID() string     { return p.id }
func (p *Process) Priority() int  { return p.priority }
func (p *Process) Burst() int     { return p.burst }
func (p *Process) Remaining() int { return p.remaining }
func (p *Process) Wait() int      { return p.wait }
func (p *Process) Status() Status { return p.status }

// SetStatus overrides the informational status.
func (p *Process) SetStatus(s Status) { p.status = s }

// Turnaround is the time from arrival (t=0) to completion.
func (p *Process) Turnaround() int { return p.burst + p.wait }

// Reset puts the process back into its constructed state so the record can be scheduled again.
func (p *Process) Reset() {
	p.remaining = p.burst
	p.wait = 0
	p.status = StatusNew
	p.done = false
}

// started reports whether some algorithm has already touched the runtime fields.
func (p *Process) started() bool {
	return p.done || p.remaining != p.burst || p.wait != 0
}

// run consumes up to units of the remaining burst and returns how many were used.
func (p *Process) run(units int) int {
	if units > p.remaining {
		units = p.remaining
	}
	p.remaining -= units
	return units
}

func (p *Process) addWait(t int) { p.wait += t }

// settleWait overwrites the accumulated wait with the closed form:
// elapsed time at completion minus the time the process itself ran.
func (p *Process) settleWait(clock int) { p.wait = clock - p.burst }

func (p *Process) finish() {
	p.done = true
	p.status = StatusTerminated
}
