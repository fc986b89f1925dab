package fsm

import "sort"

// OutputAlong runs seq from q and returns the observed output sequence
// together with the state the walk ends in. It stops at the first undefined
// transition and returns the partial output collected so far alongside
// WrongState, per the contract in §4.A: "outputAlong stops at the first
// undefined transition and returns (partial, WRONG_STATE)".
func (f *FSM) OutputAlong(q State, seq Sequence) ([]Output, State) {
	out := make([]Output, 0, len(seq))
	cur := q
	for _, a := range seq {
		next := cur
		if a != StoutInput {
			next = f.Next(cur, a)
			if next == NullState {
				return out, WrongState
			}
		}
		o := f.Output(cur, a)
		if o == WrongOutput {
			return out, WrongState
		}
		out = append(out, o)
		cur = next
	}
	return out, cur
}

// EndStatePath returns the state reached by running seq from q, or
// WrongState if the walk falls off the defined transition relation before
// consuming the whole sequence.
func (f *FSM) EndStatePath(q State, seq Sequence) State {
	cur := q
	for _, a := range seq {
		if a == StoutInput {
			continue
		}
		next := f.Next(cur, a)
		if next == NullState {
			return WrongState
		}
		cur = next
	}
	return cur
}

// IsReduced reports whether no two distinct states are behaviourally
// equivalent: λ*(p, w) == λ*(q, w) for every sequence w is never true for
// p != q. Computed by Moore-style partition refinement (refineOnce) from
// the one-step output partition; a state pair that the refinement can never
// split witnesses non-reducedness.
func (f *FSM) IsReduced() bool {
	classes := initialPartitionByOutput(f)
	for {
		next, changed := refineOnce(f, classes)
		if !changed {
			break
		}
		classes = next
	}
	for _, c := range classes {
		if len(c) > 1 {
			return false
		}
	}
	return true
}

// initialPartitionByOutput groups states by their one-step output
// signature: the StateOutput (on output-state machines) followed by
// Output(s, a) for every real input a in ascending order.
func initialPartitionByOutput(f *FSM) [][]State {
	signature := make(map[string][]State)
	keys := make([]string, 0, f.nStates)
	for s := 0; s < f.nStates; s++ {
		key := outputSignature(f, State(s))
		if _, ok := signature[key]; !ok {
			keys = append(keys, key)
		}
		signature[key] = append(signature[key], State(s))
	}
	out := make([][]State, 0, len(keys))
	for _, k := range keys {
		out = append(out, signature[k])
	}
	return out
}

func outputSignature(f *FSM, s State) string {
	buf := make([]byte, 0, 4+4*f.nInputs)
	if f.IsOutputState() {
		buf = appendInt(buf, int(f.StateOutput(s)))
	}
	for a := 0; a < f.nInputs; a++ {
		buf = append(buf, '|')
		buf = appendInt(buf, int(f.Output(s, Input(a))))
	}
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	if v == 0 {
		return append(buf, '0')
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(buf, tmp[i:]...)
}

// classOf maps each state to the index of the class containing it.
func classOf(classes [][]State, nStates int) map[State]int {
	m := make(map[State]int, nStates)
	for ci, c := range classes {
		for _, s := range c {
			m[s] = ci
		}
	}
	return m
}

// refineOnce performs one round of Moore-style partition refinement: two
// states in the same class split apart if, for some input, they reach
// different classes or produce different outputs. Returns the refined
// partition and whether it differs from the input.
func refineOnce(f *FSM, classes [][]State) ([][]State, bool) {
	idx := classOf(classes, f.nStates)
	changed := false
	var out [][]State
	for _, class := range classes {
		if len(class) <= 1 {
			out = append(out, class)
			continue
		}
		groups := make(map[string][]State)
		var keys []string
		for _, s := range class {
			key := refinementSignature(f, s, idx)
			if _, ok := groups[key]; !ok {
				keys = append(keys, key)
			}
			groups[key] = append(groups[key], s)
		}
		if len(keys) > 1 {
			changed = true
		}
		for _, k := range keys {
			out = append(out, groups[k])
		}
	}
	return out, changed
}

func refinementSignature(f *FSM, s State, idx map[State]int) string {
	buf := make([]byte, 0, 8*f.nInputs)
	for a := 0; a < f.nInputs; a++ {
		buf = append(buf, '|')
		buf = appendInt(buf, int(f.Output(s, Input(a))))
		buf = append(buf, ':')
		next := f.Next(s, Input(a))
		if next == NullState {
			buf = append(buf, 'x')
			continue
		}
		buf = appendInt(buf, idx[next])
	}
	return string(buf)
}

// IsStronglyConnected reports whether every state is reachable from every
// other state: a forward BFS from each state must visit all nStates states.
func (f *FSM) IsStronglyConnected() bool {
	for s := 0; s < f.nStates; s++ {
		if len(f.reachableFrom(State(s))) != f.nStates {
			return false
		}
	}
	return true
}

func (f *FSM) reachableFrom(start State) map[State]bool {
	visited := map[State]bool{start: true}
	queue := []State{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for a := 0; a < f.nInputs; a++ {
			next := f.Next(cur, Input(a))
			if next != NullState && !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return visited
}

// Minimize replaces the receiver's tables with the quotient FSM obtained by
// merging behaviourally-equivalent states, renumbering the surviving
// classes so the class containing state 0 is renumbered 0. Apart from the
// SetTransition/SetOutput/SetStateOutput builders used to populate an FSM,
// it is the only mutating method on FSM. Returns the number of states after
// minimization.
func (f *FSM) Minimize() int {
	classes := initialPartitionByOutput(f)
	for {
		next, changed := refineOnce(f, classes)
		if !changed {
			classes = next
			break
		}
		classes = next
	}

	// order classes so state 0's class comes first, each class sorted by
	// its minimum original state id for determinism.
	idx := classOf(classes, f.nStates)
	order := make([]int, len(classes))
	for i := range order {
		order[i] = i
	}
	// stable sort by min member id, with class 0's holder first
	zeroClass := idx[0]
	sortClasses(classes, order, zeroClass)

	newDelta := make([][]State, len(classes))
	var newOutTrans [][]Output
	if f.IsOutputTransition() {
		newOutTrans = make([][]Output, len(classes))
	}
	var newOutState []Output
	if f.IsOutputState() {
		newOutState = make([]Output, len(classes))
	}

	// map from old class index -> new position
	newPos := make([]int, len(classes))
	for newIdx, oldIdx := range order {
		newPos[oldIdx] = newIdx
	}

	for newIdx, oldIdx := range order {
		rep := classes[oldIdx][0]
		row := make([]State, f.nInputs)
		for a := 0; a < f.nInputs; a++ {
			next := f.Next(rep, Input(a))
			if next == NullState {
				row[a] = NullState
			} else {
				row[a] = State(newPos[idx[next]])
			}
		}
		newDelta[newIdx] = row
		if f.IsOutputTransition() {
			trow := make([]Output, f.nInputs)
			for a := 0; a < f.nInputs; a++ {
				trow[a] = f.Output(rep, Input(a))
			}
			newOutTrans[newIdx] = trow
		}
		if f.IsOutputState() {
			newOutState[newIdx] = f.StateOutput(rep)
		}
	}

	f.nStates = len(classes)
	f.delta = newDelta
	f.outTrans = newOutTrans
	f.outState = newOutState

	return f.nStates
}

// sortClasses orders class indices so that the class containing state 0
// comes first, and all others follow in ascending order of their minimum
// member id.
func sortClasses(classes [][]State, order []int, zeroClass int) {
	minOf := func(c []State) State {
		m := c[0]
		for _, s := range c[1:] {
			if s < m {
				m = s
			}
		}
		return m
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a == zeroClass {
			return true
		}
		if b == zeroClass {
			return false
		}
		return minOf(classes[a]) < minOf(classes[b])
	})
}
