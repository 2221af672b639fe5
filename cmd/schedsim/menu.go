package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"schedsim/internal/sched"
	"schedsim/internal/ui"
)

var errNoChoice = errors.New("no algorithm chosen")

// promptMenu shows the numbered algorithm menu and, for round robin, asks for the quantum.
// An empty quantum answer keeps defQuantum.
func promptMenu(in io.Reader, out io.Writer, defQuantum int) (sched.Algorithm, int, error) {
	sc := bufio.NewScanner(in)

	fmt.Fprintln(out, ui.Bold("Which scheduling algorithm would you like to use?"))
	fmt.Fprintln(out)
	for i, alg := range sched.Algorithms {
		fmt.Fprintf(out, "%d. %s\n", i+1, alg.Title())
	}
	fmt.Fprint(out, "> ")

	if !sc.Scan() {
		return 0, 0, errNoChoice
	}
	alg, err := sched.ParseAlgorithm(sc.Text())
	if err != nil {
		return 0, 0, err
	}
	if alg != sched.RoundRobin {
		return alg, defQuantum, nil
	}

	fmt.Fprintf(out, "Enter the desired time quantum [%d]: ", defQuantum)
	if !sc.Scan() {
		return alg, defQuantum, nil
	}
	answer := strings.TrimSpace(sc.Text())
	if answer == "" {
		return alg, defQuantum, nil
	}
	q, err := strconv.Atoi(answer)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not a number", sched.ErrInvalidQuantum, answer)
	}
	if q <= 0 {
		return 0, 0, fmt.Errorf("%w: got %d", sched.ErrInvalidQuantum, q)
	}
	return alg, q, nil
}
