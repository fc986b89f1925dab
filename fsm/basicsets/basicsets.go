// Package basicsets builds the state cover, transition cover, and traversal
// set that every testing method composes with a discriminating set (§4.D).
package basicsets

import "github.com/dragosv/fsmkit/fsm"

// StateCover returns, for every state reachable from state 0, a shortest
// access sequence: a BFS from state 0 over input-labelled edges in
// ascending input order, emitting the first sequence discovered for each
// state. Unreachable states have no member in the result.
//
// When withStout is true and f.IsOutputState(), every returned access
// sequence is STOUT-interleaved per fsm.InterleaveStout, so the set stays
// self-consistent about its leading symbol.
//
// Complexity: O(n*m) where n = NumStates, m = NumInputs.
func StateCover(f *fsm.FSM, withStout bool) []fsm.Sequence {
	n := f.NumStates()
	visited := make([]bool, n)
	visited[0] = true
	result := make([]fsm.Sequence, 0, n)
	result = append(result, fsm.Sequence{})

	queue := []fsm.State{0}
	access := map[fsm.State]fsm.Sequence{0: {}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for a := 0; a < f.NumInputs(); a++ {
			next := f.Next(cur, fsm.Input(a))
			if next == fsm.NullState || visited[next] {
				continue
			}
			visited[next] = true
			seq := access[cur].Append(fsm.Input(a))
			access[next] = seq
			result = append(result, seq)
			queue = append(queue, next)
		}
	}

	if withStout {
		result = fsm.InterleaveStout(f, result)
	}
	return result
}

// TransitionCover returns Q . Sigma: every access sequence from StateCover
// with one further real input appended, for every input in the alphabet.
//
// Complexity: O(len(Q) * m).
func TransitionCover(f *fsm.FSM, withStout bool) []fsm.Sequence {
	q := StateCover(f, false)
	result := make([]fsm.Sequence, 0, len(q)*f.NumInputs())
	for _, seq := range q {
		for a := 0; a < f.NumInputs(); a++ {
			result = append(result, seq.Append(fsm.Input(a)))
		}
	}
	if withStout {
		result = fsm.InterleaveStout(f, result)
	}
	return result
}

// TraversalSet returns every input sequence of length in [0, k] that keeps
// the machine in a defined state throughout, starting from state 0. k < 0
// yields an empty set.
//
// This module builds the traversal set relative to state 0 (see DESIGN.md,
// Open Question resolution 4): for the reduced, strongly-connected FSMs
// this package targets, that is exactly the set every testing method needs
// once concatenated after an arbitrary Q/P prefix.
//
// Complexity: O(m^k) in the worst case (m = NumInputs); bounded by the
// spec's small property-test scale (n <= 10, m <= 5).
func TraversalSet(f *fsm.FSM, k int) []fsm.Sequence {
	if k < 0 {
		return nil
	}
	var result []fsm.Sequence
	var walk func(state fsm.State, prefix fsm.Sequence, depth int)
	walk = func(state fsm.State, prefix fsm.Sequence, depth int) {
		result = append(result, prefix.Clone())
		if depth == k {
			return
		}
		for a := 0; a < f.NumInputs(); a++ {
			next := f.Next(state, fsm.Input(a))
			if next == fsm.NullState {
				continue
			}
			walk(next, prefix.Append(fsm.Input(a)), depth+1)
		}
	}
	walk(0, fsm.Sequence{}, 0)
	return result
}
