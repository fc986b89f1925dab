package fsm

// AreIsomorphic reports whether a and b are the same FSM up to a relabeling
// of state indices: same variant, same dimensions, and a bijection on
// states under which every transition and output agrees.
//
// Complexity: O(n) in the common case (BFS from state 0 on both machines in
// lockstep); worst case O(n * inputs) when many states share signatures.
func AreIsomorphic(a, b *FSM) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.variant != b.variant || a.nStates != b.nStates || a.nInputs != b.nInputs || a.nOutputs != b.nOutputs {
		return false
	}

	aToB := make(map[State]State, a.nStates)
	bToA := make(map[State]State, a.nStates)
	aToB[0] = 0
	bToA[0] = 0
	queue := []State{0}

	for len(queue) > 0 {
		qa := queue[0]
		queue = queue[1:]
		qb := aToB[qa]

		if a.StateOutput(qa) != b.StateOutput(qb) {
			return false
		}

		for i := 0; i < a.nInputs; i++ {
			in := Input(i)
			if a.Output(qa, in) != b.Output(qb, in) {
				return false
			}
			na := a.Next(qa, in)
			nb := b.Next(qb, in)
			if na == NullState || nb == NullState {
				if na != nb {
					return false
				}
				continue
			}
			if existing, ok := aToB[na]; ok {
				if existing != nb {
					return false
				}
				continue
			}
			if _, taken := bToA[nb]; taken {
				return false
			}
			aToB[na] = nb
			bToA[nb] = na
			queue = append(queue, na)
		}
	}

	return len(aToB) == a.nStates
}
