// Package fsmkit (fsmkit) is your in-memory toolkit for building checking
// experiments against finite state machines in Go.
//
// 🚀 What is fsmkit?
//
//	A small, dependency-light library that brings together:
//
//	  • The FSM model: DFA, Moore, Mealy and general DFSM variants behind one
//	    uniform query surface, plus `.fsm` file I/O and DOT export.
//	  • Discriminating structures: state/transition cover, traversal sets,
//	    pairwise separating sequences, the splitting tree, PDS/ADS/SVS/SCSet/
//	    CSet/HSI.
//	  • Checking-experiment generators: W, Wp, HSI, H, SPY, SPYH, SVSMethod
//	    (test suites) and C, Ma, Mra (single checking sequences).
//
// ✨ Why choose fsmkit?
//
//   - Deterministic  — every generator's output is a pure function of the
//     FSM's defined transitions; no hidden randomness, no wall-clock reads
//   - Composable     — each subpackage builds on the one below it, and every
//     building block is independently usable
//   - Pure Go        — no cgo, no codegen, one third-party dependency (used
//     only by the test suites)
//
// Under the hood, everything is organized under the fsm package and its
// subpackages:
//
//	fsm/                — the FSM value type, sentinels, file I/O, DOT export
//	fsm/prefixset/       — the trie-backed suite normal form
//	fsm/shortestpath/    — all-pairs shortest input sequences
//	fsm/basicsets/       — state cover, transition cover, traversal set
//	fsm/separation/      — pairwise separating sequences, the splitting tree
//	fsm/identifiers/     — PDS, ADS, SVS, verifying set, SCSet, CSet, HSI
//	fsm/suite/           — the canonical prefix-free suite minimiser
//	fsm/testmethods/     — W, Wp, HSI, H, SPY, SPYH, SVSMethod, C, Ma, Mra
//
// Quick ASCII example: a 2-state Mealy machine accepting 0/1 and toggling.
//
//	    0 --0/0--> 1
//	    1 --0/1--> 0
//
// A caller hands the machine and an extra-state bound to
// testmethods.W(machine, extraStates) and gets back a test suite that
// catches any implementation differing from it by up to that many hidden
// states.
//
//	go get github.com/dragosv/fsmkit
package fsmkit
