package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"schedsim/internal/sched"
	"schedsim/internal/ui"
)

// Title returns the banner heading for a run.
func Title(r *sched.Result) string {
	if r.Algorithm == sched.RoundRobin {
		return fmt.Sprintf("%s (time quantum %d)", r.Algorithm.Title(), r.Quantum)
	}
	return r.Algorithm.Title()
}

// Table writes the per-process timing table in dispatch order, with averages in the footer.
func Table(w io.Writer, r *sched.Result) {
	ui.Banner(w, Title(r))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Wait", "Turnaround"})
	table.SetAutoFormatHeaders(false)
	for _, row := range r.Summary.Rows {
		table.Append([]string{
			row.ID,
			strconv.Itoa(row.Priority),
			strconv.Itoa(row.Burst),
			strconv.Itoa(row.Wait),
			strconv.Itoa(row.Turnaround),
		})
	}
	table.SetFooter([]string{"", "", "Average",
		fmt.Sprintf("%.3f", r.Summary.AvgWait),
		fmt.Sprintf("%.3f", r.Summary.AvgTurnaround),
	})
	table.Render()

	fmt.Fprintf(w, "%s %d   %s %s\n",
		ui.Bold("Total time:"), r.Clock,
		ui.Bold("Completion order:"), strings.Join(r.Completion, " → "))
}

// Plain writes results in the classic line format:
//
//	A Turnaround time = 5, Waiting time = 0
func Plain(w io.Writer, r *sched.Result) {
	ui.Banner(w, Title(r))
	for _, row := range r.Summary.Rows {
		fmt.Fprintf(w, "%s Turnaround time = %d, Waiting time = %d\n", row.ID, row.Turnaround, row.Wait)
	}
	fmt.Fprintf(w, "\nAverage turn-around time = %s, Average waiting time = %s\n",
		formatAvg(r.Summary.AvgTurnaround), formatAvg(r.Summary.AvgWait))
}

// Gantt writes a one-line chart of the trace, e.g. |A 0-2|B 2-4|.
func Gantt(w io.Writer, trace []sched.Slice) {
	if len(trace) == 0 {
		return
	}
	var sb strings.Builder
	sb.WriteString("|")
	for _, sl := range trace {
		fmt.Fprintf(&sb, "%s %s|", ui.PID(sl.PID), ui.Dim(fmt.Sprintf("%d-%d", sl.Start, sl.Stop)))
	}
	fmt.Fprintln(w, sb.String())
}

// Comparison writes one row per result so algorithms can be compared side by side.
func Comparison(w io.Writer, results []*sched.Result) {
	ui.Banner(w, "Algorithm comparison")

	best := 0
	for i, r := range results {
		if r.Summary.AvgWait < results[best].Summary.AvgWait {
			best = i
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg wait", "Avg turnaround", "Total time", "Completion order"})
	table.SetAutoFormatHeaders(false)
	for i, r := range results {
		name := Title(r)
		if i == best {
			name += " *"
		}
		table.Append([]string{
			name,
			fmt.Sprintf("%.3f", r.Summary.AvgWait),
			fmt.Sprintf("%.3f", r.Summary.AvgTurnaround),
			strconv.Itoa(r.Clock),
			strings.Join(r.Completion, " "),
		})
	}
	table.Render()
	if len(results) > 0 {
		fmt.Fprintf(w, "%s lowest average wait\n", ui.Green("*"))
	}
}

// formatAvg prints whole numbers without decimals and everything else with up to three.
func formatAvg(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
