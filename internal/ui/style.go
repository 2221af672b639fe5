package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Sprint color functions for building styled strings.
var (
	Bold       = color.New(color.Bold).SprintFunc()
	Dim        = color.New(color.Faint).SprintFunc()
	Cyan       = color.New(color.FgCyan).SprintFunc()
	Green      = color.New(color.FgGreen).SprintFunc()
	Red        = color.New(color.FgRed).SprintFunc()
	Yellow     = color.New(color.FgYellow).SprintFunc()
	BoldCyan   = color.New(color.Bold, color.FgCyan).SprintFunc()
	BoldYellow = color.New(color.Bold, color.FgYellow).SprintFunc()
	BoldWhite  = color.New(color.Bold, color.FgWhite).SprintFunc()
)

// SetEnabled forces colour on or off, e.g. for --no-color or tests.
func SetEnabled(on bool) {
	color.NoColor = !on
}

// Banner writes the framed title block used at the top of every report.
func Banner(w io.Writer, title string) {
	const rule = "===================================================="
	fmt.Fprintln(w)
	fmt.Fprintln(w, Dim(rule))
	fmt.Fprintln(w, BoldCyan(title))
	fmt.Fprintln(w, Dim(rule))
}

// processColors is a palette of distinct bold colors for differentiating processes.
var processColors = []func(a ...interface{}) string{
	color.New(color.Bold, color.FgMagenta).SprintFunc(),
	BoldCyan,
	BoldYellow,
	color.New(color.Bold, color.FgGreen).SprintFunc(),
	color.New(color.Bold, color.FgHiBlue).SprintFunc(),
	color.New(color.Bold, color.FgHiRed).SprintFunc(),
}

// processColorIndex hashes a process ID to a palette index.
func processColorIndex(pid string) int {
	var h uint32
	for _, c := range pid {
		h = h*31 + uint32(c)
	}
	return int(h % uint32(len(processColors)))
}

// PID returns the process ID in its palette colour.
// The same ID always gets the same colour.
func PID(pid string) string {
	return processColors[processColorIndex(pid)](pid)
}
