package fsm

import "fmt"

// FSM is the in-memory semantic value ⟨variant, nStates, nInputs, nOutputs,
// δ, λ, q0⟩ described by the data model: q0 is always state 0.
//
// An FSM is built once via NewFSM or Load and is then read-only for every
// derivation in this module; apart from the Set* builders used to populate
// it, Minimize is the only mutating method. There is
// no internal locking because the core is single-threaded and
// computation-pure (concurrent readers are safe, concurrent mutation is
// undefined — see the package doc).
type FSM struct {
	variant   Variant
	nStates   int
	nInputs   int
	nOutputs  int
	delta     [][]State  // delta[state][input] -> State or NullState
	outTrans  [][]Output // Mealy/DFSM: outTrans[state][input] -> Output or DefaultOutput
	outState  []Output   // Moore/DFA/DFSM: outState[state] -> Output
}

// NewFSM constructs an FSM with all transitions undefined and all outputs
// set to DefaultOutput. Callers populate it with SetTransition/SetOutput/
// SetStateOutput before use.
//
// Returns ErrInvalidDimensions if any of nStates, nInputs, nOutputs is <= 0.
func NewFSM(variant Variant, nStates, nInputs, nOutputs int) (*FSM, error) {
	if nStates <= 0 || nInputs <= 0 || nOutputs <= 0 {
		return nil, ErrInvalidDimensions
	}

	f := &FSM{
		variant:  variant,
		nStates:  nStates,
		nInputs:  nInputs,
		nOutputs: nOutputs,
	}
	f.delta = make([][]State, nStates)
	if f.IsOutputTransition() {
		f.outTrans = make([][]Output, nStates)
	}
	for s := 0; s < nStates; s++ {
		f.delta[s] = make([]State, nInputs)
		for i := range f.delta[s] {
			f.delta[s][i] = NullState
		}
		if f.IsOutputTransition() {
			f.outTrans[s] = make([]Output, nInputs)
			for i := range f.outTrans[s] {
				f.outTrans[s][i] = DefaultOutput
			}
		}
	}
	if f.IsOutputState() {
		f.outState = make([]Output, nStates)
		for s := range f.outState {
			f.outState[s] = DefaultOutput
		}
	}

	return f, nil
}

// IsOutputTransition reports whether this variant attaches an output to
// transitions (Mealy, DFSM). Constant per variant.
func (f *FSM) IsOutputTransition() bool {
	return f.variant == Mealy || f.variant == DFSM
}

// IsOutputState reports whether this variant attaches an output to states
// (DFA, Moore, DFSM). Constant per variant. When true, StoutInput is a valid
// input and Output(q, StoutInput) == StateOutput(q).
func (f *FSM) IsOutputState() bool {
	return f.variant == DFA || f.variant == Moore || f.variant == DFSM
}

// NumStates returns the number of states.
func (f *FSM) NumStates() int { return f.nStates }

// NumInputs returns the size of the real input alphabet (StoutInput excluded).
func (f *FSM) NumInputs() int { return f.nInputs }

// NumOutputs returns the number of distinct output symbols.
func (f *FSM) NumOutputs() int { return f.nOutputs }

// Type returns the FSM's variant.
func (f *FSM) Type() Variant { return f.variant }

// Next returns the state reached from q on input a, or NullState if
// undefined. Passing StoutInput always returns q (STOUT never advances).
func (f *FSM) Next(q State, a Input) State {
	if a == StoutInput {
		return q
	}
	if !f.validState(q) || !f.validInput(a) {
		return NullState
	}
	return f.delta[q][a]
}

// SetTransition defines δ(q, a) = target. A target of NullState makes the
// transition undefined. Returns ErrStateOutOfRange if q or a is out of
// range, or if target is neither NullState nor in range.
func (f *FSM) SetTransition(q State, a Input, target State) error {
	if !f.validState(q) || !f.validInput(a) || (target != NullState && !f.validState(target)) {
		return ErrStateOutOfRange
	}
	f.delta[q][a] = target
	return nil
}

// Output returns λ(q, a): the transition output for Mealy/DFSM, or the
// state output of the destination δ(q, a) for DFA/Moore. For STOUT_INPUT on
// an output-state machine, it is StateOutput(q). Returns DefaultOutput if
// undefined, WrongOutput if q or a is out of range.
func (f *FSM) Output(q State, a Input) Output {
	if !f.validState(q) {
		return WrongOutput
	}
	if a == StoutInput {
		if f.IsOutputState() {
			return f.outState[q]
		}
		return WrongOutput
	}
	if !f.validInput(a) {
		return WrongOutput
	}
	if f.IsOutputTransition() {
		return f.outTrans[q][a]
	}
	// Moore/DFA on a real input: the "output of the transition" for
	// purposes of Mealy-style output-sequence construction is the
	// destination state's output.
	dest := f.delta[q][a]
	if dest == NullState {
		return DefaultOutput
	}
	return f.outState[dest]
}

// SetOutput defines λ(q, a) = out for Mealy/DFSM transitions. Returns
// ErrStateOutOfRange / ErrOutputOutOfRange on bad arguments, or an error if
// called on a variant without transition outputs.
func (f *FSM) SetOutput(q State, a Input, out Output) error {
	if !f.IsOutputTransition() {
		return fmt.Errorf("fsm: %s has no transition outputs", f.variant)
	}
	if !f.validState(q) || !f.validInput(a) {
		return ErrStateOutOfRange
	}
	if out < 0 || int(out) >= f.nOutputs {
		return ErrOutputOutOfRange
	}
	f.outTrans[q][a] = out
	return nil
}

// StateOutput returns the state output of q for Moore/DFA/DFSM, or
// DefaultOutput if q is out of range or the variant has no state outputs.
func (f *FSM) StateOutput(q State) Output {
	if !f.IsOutputState() || !f.validState(q) {
		return DefaultOutput
	}
	return f.outState[q]
}

// SetStateOutput defines the state output of q. Returns ErrStateOutOfRange
// / ErrOutputOutOfRange on bad arguments, or an error if the variant has no
// state outputs.
func (f *FSM) SetStateOutput(q State, out Output) error {
	if !f.IsOutputState() {
		return fmt.Errorf("fsm: %s has no state outputs", f.variant)
	}
	if !f.validState(q) {
		return ErrStateOutOfRange
	}
	if out < 0 || int(out) >= f.nOutputs {
		return ErrOutputOutOfRange
	}
	f.outState[q] = out
	return nil
}

func (f *FSM) validState(q State) bool {
	return q >= 0 && int(q) < f.nStates
}

func (f *FSM) validInput(a Input) bool {
	return a >= 0 && int(a) < f.nInputs
}

// Duplicate returns an independently-owned deep copy of f.
func (f *FSM) Duplicate() *FSM {
	out := &FSM{
		variant:  f.variant,
		nStates:  f.nStates,
		nInputs:  f.nInputs,
		nOutputs: f.nOutputs,
	}
	out.delta = make([][]State, f.nStates)
	for s := range f.delta {
		out.delta[s] = append([]State(nil), f.delta[s]...)
	}
	if f.IsOutputTransition() {
		out.outTrans = make([][]Output, f.nStates)
		for s := range f.outTrans {
			out.outTrans[s] = append([]Output(nil), f.outTrans[s]...)
		}
	}
	if f.IsOutputState() {
		out.outState = append([]Output(nil), f.outState...)
	}
	return out
}
