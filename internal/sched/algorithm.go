package sched

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoProcesses      = errors.New("no processes to schedule")
	ErrInvalidQuantum   = errors.New("round robin quantum must be positive")
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
	ErrProcessStarted   = errors.New("process already scheduled; reset it or build a fresh list")
)

// Algorithm selects a scheduling discipline.
type Algorithm int

const (
	FCFS Algorithm = iota + 1
	SJF
	Priority
	RoundRobin
)

// Algorithms lists every discipline in menu order.
var Algorithms = []Algorithm{FCFS, SJF, Priority, RoundRobin}

func (a Algorithm) String() string {
	switch a {
	case FCFS:
		return "fcfs"
	case SJF:
		return "sjf"
	case Priority:
		return "priority"
	case RoundRobin:
		return "rr"
	default:
		return "unknown"
	}
}

// Title is the human readable name used in reports.
func (a Algorithm) Title() string {
	switch a {
	case FCFS:
		return "First Come First Served"
	case SJF:
		return "Shortest Job First"
	case Priority:
		return "Priority"
	case RoundRobin:
		return "Round Robin"
	default:
		return "Unknown"
	}
}

// ParseAlgorithm accepts a short name, a long name or the menu number 1-4.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "fcfs", "first-come-first-served":
		return FCFS, nil
	case "2", "sjf", "shortest-job-first":
		return SJF, nil
	case "3", "priority", "prio":
		return Priority, nil
	case "4", "rr", "round-robin", "roundrobin":
		return RoundRobin, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText lets an Algorithm appear by name in JSON and YAML.
func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	alg, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = alg
	return nil
}
