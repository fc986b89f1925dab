package fsm

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// WriteDot renders f as a Graphviz digraph under dir, named "fsm.dot", and
// returns the path written. One node per state (labeled with its index and,
// when present, its state output); one edge per defined transition (labeled
// "input/output").
func (f *FSM) WriteDot(dir string) (string, error) {
	path := filepath.Join(dir, "fsm.dot")
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("fsm: write dot: %w", err)
	}
	defer out.Close()

	bw := bufio.NewWriter(out)
	fmt.Fprintln(bw, "digraph fsm {")
	for s := 0; s < f.nStates; s++ {
		if f.IsOutputState() {
			fmt.Fprintf(bw, "\t%d [label=\"%d / %d\"];\n", s, s, f.StateOutput(State(s)))
		} else {
			fmt.Fprintf(bw, "\t%d [label=\"%d\"];\n", s, s)
		}
	}
	for s := 0; s < f.nStates; s++ {
		for a := 0; a < f.nInputs; a++ {
			next := f.delta[s][a]
			if next == NullState {
				continue
			}
			fmt.Fprintf(bw, "\t%d -> %d [label=\"%d/%d\"];\n", s, int(next), a, f.Output(State(s), Input(a)))
		}
	}
	fmt.Fprintln(bw, "}")
	if err := bw.Flush(); err != nil {
		return "", fmt.Errorf("fsm: write dot: %w", err)
	}
	return path, nil
}
