package job

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"schedsim/internal/sched"
)

var ErrInvalidRecord = errors.New("invalid process record")

// Spec is one validated line of a schedule file.
type Spec struct {
	ID       string `json:"id"`
	Priority int    `json:"priority"`
	Burst    int    `json:"burst"`
}

// Validate checks the invariants a record must satisfy before it reaches the scheduler.
func (s Spec) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidRecord)
	}
	if s.Burst < 0 {
		return fmt.Errorf("%w: %s has negative burst %d", ErrInvalidRecord, s.ID, s.Burst)
	}
	return nil
}

// Parse reads "id,priority,burst" records, one per line.
// Blank lines and lines starting with '#' are skipped.
func Parse(r io.Reader) ([]Spec, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var specs []Spec
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
		line, _ := cr.FieldPos(0)

		spec, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func parseRecord(rec []string) (Spec, error) {
	if len(rec) != 3 {
		return Spec{}, fmt.Errorf("%w: want 3 fields (id,priority,burst), got %d", ErrInvalidRecord, len(rec))
	}

	id := strings.TrimSpace(rec[0])
	priority, err := strconv.Atoi(strings.TrimSpace(rec[1]))
	if err != nil {
		return Spec{}, fmt.Errorf("%w: priority %q is not a number", ErrInvalidRecord, rec[1])
	}
	burst, err := strconv.Atoi(strings.TrimSpace(rec[2]))
	if err != nil {
		return Spec{}, fmt.Errorf("%w: burst %q is not a number", ErrInvalidRecord, rec[2])
	}

	spec := Spec{ID: id, Priority: priority, Burst: burst}
	if err := spec.Validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// LoadFile opens path and parses it.
func LoadFile(path string) ([]Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schedule file: %w", err)
	}
	defer f.Close()

	specs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return specs, nil
}

// Processes builds a fresh process list from specs, in the same order.
// Call it once per run; lists are not meant to be shared between runs.
func Processes(specs []Spec) []*sched.Process {
	procs := make([]*sched.Process, 0, len(specs))
	for _, s := range specs {
		procs = append(procs, sched.NewProcess(s.ID, s.Priority, s.Burst))
	}
	return procs
}
