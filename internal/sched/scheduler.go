// internal/sched/scheduler.go

package sched

import (
	"fmt"
	"io"
	"log/slog"
)

// Scheduler runs one scheduling discipline over a process list at a time.
// It keeps no per-run state, so the same Scheduler can serve many runs.
type Scheduler struct {
	quantum int          // round robin time slice
	log     *slog.Logger // dispatch logging
}

// Result is everything a run produces.
type Result struct {
	Algorithm  Algorithm  `json:"algorithm"`
	Quantum    int        `json:"quantum,omitempty"`
	Clock      int        `json:"clock"`      // final simulated time
	Order      []*Process `json:"-"`          // dispatch order, i.e. input order or the policy's order
	Completion []string   `json:"completion"` // process IDs in the order they terminated
	Trace      []Slice    `json:"trace"`
	Summary    Summary    `json:"summary"`
}

// New creates a new Scheduler with the given configuration.
// A nil logger discards dispatch logs.
func New(cfg Config, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scheduler{
		quantum: cfg.Quantum,
		log:     logger,
	}
}

// Quantum returns the round robin time slice this scheduler uses.
func (s *Scheduler) Quantum() int { return s.quantum }

// Run simulates alg over procs, mutating their wait and remaining burst.
// The caller's slice is never reordered; Result.Order holds the dispatch order.
func (s *Scheduler) Run(alg Algorithm, procs []*Process) (*Result, error) {
	if len(procs) == 0 {
		return nil, ErrNoProcesses
	}
	if alg == RoundRobin && s.quantum <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantum, s.quantum)
	}
	for _, p := range procs {
		if p.started() {
			return nil, fmt.Errorf("%w: %s", ErrProcessStarted, p.ID())
		}
	}

	r := &Result{Algorithm: alg}
	switch alg {
	case FCFS:
		r.Order = append([]*Process(nil), procs...)
		s.runToCompletion(r)
	case SJF:
		r.Order = ByBurstLength(procs)
		s.runToCompletion(r)
	case Priority:
		r.Order = ByPriority(procs)
		s.runToCompletion(r)
	case RoundRobin:
		r.Quantum = s.quantum
		r.Order = append([]*Process(nil), procs...)
		s.roundRobin(r)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}

	summary, err := Summarize(r.Order)
	if err != nil {
		return nil, err
	}
	r.Summary = summary

	s.log.Info("simulation finished",
		slog.String("algorithm", alg.String()),
		slog.Int("processes", len(procs)),
		slog.Int("clock", r.Clock),
		slog.Float64("avg_turnaround", summary.AvgTurnaround),
		slog.Float64("avg_wait", summary.AvgWait),
	)
	return r, nil
}

// runToCompletion is the non-preemptive dispatch loop shared by FCFS, SJF and Priority:
// each process waits for everything dispatched before it, then runs its whole burst.
func (s *Scheduler) runToCompletion(r *Result) {
	var clock Clock
	admit(r.Order)

	for _, p := range r.Order {
		start := clock.Now()
		p.addWait(start)
		p.SetStatus(StatusRunning)
		stop := clock.Advance(p.run(p.Remaining()))
		p.finish()

		s.record(r, p, start, stop, SliceFinish)
	}
	r.Clock = clock.Now()
}

// roundRobin sweeps the list repeatedly, granting each unfinished process at most one
// quantum per sweep, until every process has terminated.
func (s *Scheduler) roundRobin(r *Result) {
	var clock Clock
	admit(r.Order)

	completed := 0
	for completed < len(r.Order) {
		for _, p := range r.Order {
			if p.done {
				continue
			}

			start := clock.Now()
			p.addWait(start)
			p.SetStatus(StatusRunning)

			if p.Remaining() <= s.quantum {
				stop := clock.Advance(p.run(p.Remaining()))
				// The final slice replaces whatever was accumulated on earlier sweeps.
				p.settleWait(stop)
				p.finish()
				completed++
				s.record(r, p, start, stop, SliceFinish)
				continue
			}

			stop := clock.Advance(p.run(s.quantum))
			p.SetStatus(StatusWaiting)
			s.record(r, p, start, stop, SlicePreempt)
		}
	}
	r.Clock = clock.Now()
}

func (s *Scheduler) record(r *Result, p *Process, start, stop int, kind SliceKind) {
	r.Trace = append(r.Trace, Slice{PID: p.ID(), Start: start, Stop: stop, Kind: kind})
	if kind == SliceFinish {
		r.Completion = append(r.Completion, p.ID())
	}

	s.log.Debug("dispatch",
		slog.String("pid", p.ID()),
		slog.Int("start", start),
		slog.Int("stop", stop),
		slog.String("event", kind.String()),
		slog.Int("remaining", p.Remaining()),
		slog.Int("wait", p.Wait()),
	)
}

// admit moves every process into the ready queue at t=0.
func admit(procs []*Process) {
	for _, p := range procs {
		p.SetStatus(StatusReady)
	}
}
