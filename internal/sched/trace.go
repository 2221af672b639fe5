package sched

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteTraceCSV writes one CSV record per slice, preceded by a header.
func WriteTraceCSV(w io.Writer, trace []Slice) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"start", "stop", "pid", "event", "ran"}); err != nil {
		return fmt.Errorf("write trace header: %w", err)
	}
	for _, sl := range trace {
		rec := []string{
			strconv.Itoa(sl.Start),
			strconv.Itoa(sl.Stop),
			sl.PID,
			sl.Kind.String(),
			strconv.Itoa(sl.Ran()),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write trace: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
