// Package shortestpath computes all-pairs shortest input sequences over an
// FSM's transition graph, ignoring outputs (§4.C). It is the substrate the
// testing-method and checking-sequence generators use to move between
// states economically.
//
// Determinism
//
//	Ties are broken by ascending input index: among several inputs that all
//	reach the same distance-minimizing successor set, the lowest-indexed one
//	is chosen, so GetShortestPath returns the same sequence across runs.
//
// Complexity (n = NumStates, m = NumInputs)
//
//	AllShortestPaths runs one reverse BFS per destination: O(n * (n + n*m)).
package shortestpath

import "github.com/dragosv/fsmkit/fsm"

// Step records, for a (state, destination) pair, the first input to take
// from state to make progress toward destination, and the state that input
// leads to. A zero Step (Valid == false) means no predecessor is known:
// either state == destination, or destination is unreachable from state.
type Step struct {
	Input fsm.Input
	Next  fsm.State
	Valid bool
}

// Matrix is indexed Matrix[state][destination].
type Matrix [][]Step

// AllShortestPaths computes, for every destination t, a shortest-path tree
// of t: for every state s, the first input to take from s to approach t
// along a shortest input sequence.
func AllShortestPaths(f *fsm.FSM) Matrix {
	n := f.NumStates()
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]Step, n)
	}

	// reverse adjacency: revAdj[dest] = list of (input, source) such that
	// f.Next(source, input) == dest.
	revAdj := make([][]struct {
		in  fsm.Input
		src fsm.State
	}, n)
	for s := 0; s < n; s++ {
		for a := 0; a < f.NumInputs(); a++ {
			dest := f.Next(fsm.State(s), fsm.Input(a))
			if dest == fsm.NullState {
				continue
			}
			revAdj[dest] = append(revAdj[dest], struct {
				in  fsm.Input
				src fsm.State
			}{fsm.Input(a), fsm.State(s)})
		}
	}

	for t := 0; t < n; t++ {
		visited := make([]bool, n)
		visited[t] = true
		queue := []fsm.State{fsm.State(t)}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			// Among all reverse-edges into cur, discover unvisited
			// sources in ascending input order for determinism.
			preds := revAdj[cur]
			for _, p := range orderedByInput(preds) {
				if visited[p.src] {
					continue
				}
				visited[p.src] = true
				m[p.src][t] = Step{Input: p.in, Next: cur, Valid: true}
				queue = append(queue, p.src)
			}
		}
	}

	return m
}

type predEdge = struct {
	in  fsm.Input
	src fsm.State
}

func orderedByInput(edges []predEdge) []predEdge {
	out := append([]predEdge(nil), edges...)
	for i := 1; i < len(out); i++ {
		j := i
		for j > 0 && out[j-1].in > out[j].in {
			out[j-1], out[j] = out[j], out[j-1]
			j--
		}
	}
	return out
}

// GetShortestPath reconstructs the shortest input sequence from "from" to
// "to" using a matrix computed by AllShortestPaths. Returns the empty
// sequence both when from == to and when no path exists; callers that need
// to distinguish the two cases compare from and to directly, per §4.C.
func GetShortestPath(f *fsm.FSM, from, to fsm.State, m Matrix) fsm.Sequence {
	if from == to {
		return fsm.Sequence{}
	}
	seq := fsm.Sequence{}
	cur := from
	seen := map[fsm.State]bool{cur: true}
	for cur != to {
		step := m[cur][to]
		if !step.Valid {
			return fsm.Sequence{}
		}
		seq = append(seq, step.Input)
		cur = step.Next
		if seen[cur] {
			// defensive: a well-formed Matrix never cycles, but never loop forever.
			return fsm.Sequence{}
		}
		seen[cur] = true
	}
	return seq
}
