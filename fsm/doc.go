// Package fsm defines the central FSM value type and the sentinel values,
// sequence type, and `.fsm` file format shared by every algorithm package in
// this module.
//
// What
//
//   - FSM models four variants — DFA, Moore, Mealy, DFSM — behind one query
//     surface: Next, Output, OutputAlong, EndStatePath.
//   - Sequence is an ordered list of Input symbols, possibly containing the
//     StoutInput pseudo-input.
//   - NullState, StoutInput, DefaultOutput, WrongOutput and WrongState are
//     distinct sentinel values, not a nullable wrapper: each is its own Go
//     type (State vs Input vs Output), so a NullState can never be mistaken
//     for a StoutInput even though both happen to underlie the value -1.
//
// Why
//
//   - Every algorithm package (prefixset, shortestpath, basicsets,
//     separation, identifiers, suite, testmethods) is a pure function of an
//     *FSM plus parameters; keeping the model in one leaf package that
//     imports none of them avoids import cycles and lets every other package
//     treat an FSM as read-only.
//
// Lifecycle
//
//	An FSM is built via NewFSM or Load, then treated as read-only by every
//	derivation. Apart from the Set* builders used to populate it, Minimize
//	is the only mutating method; it replaces the receiver's tables in place
//	and returns the (possibly smaller) number of states.
//	Concurrent readers of one FSM are safe; concurrent mutation is undefined.
package fsm
