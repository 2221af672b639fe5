package sched

// Row is the per-process outcome of a run.
type Row struct {
	ID         string `json:"id"`
	Priority   int    `json:"priority"`
	Burst      int    `json:"burst"`
	Wait       int    `json:"wait"`
	Turnaround int    `json:"turnaround"`
}

// Summary aggregates the final timing of a run.
type Summary struct {
	Rows          []Row   `json:"details"`
	AvgTurnaround float64 `json:"average_turnaround"`
	AvgWait       float64 `json:"average_wait"`
}

// Summarize reduces finished processes to per-process rows and averages.
// Rows keep the order of procs.
func Summarize(procs []*Process) (Summary, error) {
	if len(procs) == 0 {
		return Summary{}, ErrNoProcesses
	}

	var totalTurnaround, totalWait int
	rows := make([]Row, 0, len(procs))
	for _, p := range procs {
		rows = append(rows, Row{
			ID:         p.ID(),
			Priority:   p.Priority(),
			Burst:      p.Burst(),
			Wait:       p.Wait(),
			Turnaround: p.Turnaround(),
		})
		totalTurnaround += p.Turnaround()
		totalWait += p.Wait()
	}

	n := float64(len(procs))
	return Summary{
		Rows:          rows,
		AvgTurnaround: float64(totalTurnaround) / n,
		AvgWait:       float64(totalWait) / n,
	}, nil
}
