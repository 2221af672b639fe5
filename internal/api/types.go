package api

import (
	"schedsim/internal/job"
	"schedsim/internal/sched"
)

type ScheduleRequest struct {
	Algorithm string     `json:"algorithm"`
	Quantum   *int       `json:"quantum"` // nil means the configured default
	Processes []job.Spec `json:"processes"`
}

type SliceResponse struct {
	PID   string `json:"pid"`
	Start int    `json:"start"`
	Stop  int    `json:"stop"`
	Event string `json:"event"`
}

type ScheduleResponse struct {
	Algorithm         string          `json:"algorithm"`
	Quantum           int             `json:"quantum,omitempty"`
	Clock             int             `json:"clock"`
	Order             []string        `json:"order"`
	Completion        []string        `json:"completion"`
	Details           []sched.Row     `json:"details"`
	AverageWait       float64         `json:"average_wait"`
	AverageTurnaround float64         `json:"average_turnaround"`
	Trace             []SliceResponse `json:"trace"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func newScheduleResponse(r *sched.Result) ScheduleResponse {
	order := make([]string, 0, len(r.Order))
	for _, p := range r.Order {
		order = append(order, p.ID())
	}
	trace := make([]SliceResponse, 0, len(r.Trace))
	for _, sl := range r.Trace {
		trace = append(trace, SliceResponse{PID: sl.PID, Start: sl.Start, Stop: sl.Stop, Event: sl.Kind.String()})
	}

	return ScheduleResponse{
		Algorithm:         r.Algorithm.String(),
		Quantum:           r.Quantum,
		Clock:             r.Clock,
		Order:             order,
		Completion:        r.Completion,
		Details:           r.Summary.Rows,
		AverageWait:       r.Summary.AvgWait,
		AverageTurnaround: r.Summary.AvgTurnaround,
		Trace:             trace,
	}
}
