// Package separation computes, for every state pair, the shortest input
// sequence separating them, and the splitting tree that refines the full
// state set down to singletons (§4.E).
//
// Algorithm
//
//	A Hopcroft-style partition refinement: start from the 1-step output
//	partition, then repeatedly extend pairs that are still in the same
//	block by one input that routes them to distinct blocks, keeping the
//	shortest sequence discovered for each pair. Refinement stops when one
//	round makes no further progress.
//
// Determinism
//
//	Ties are broken by ascending input index first, then by
//	lexicographically smaller sequence among equal-length candidates (not
//	the inverted "non-zero means equal" comparison present in the original
//	source — see DESIGN.md, Open Question resolution 3).
package separation

import (
	"sort"

	"github.com/dragosv/fsmkit/fsm"
)

// Pair is an unordered pair of distinct states, always stored with P < Q.
type Pair struct {
	P, Q fsm.State
}

func makePair(a, b fsm.State) Pair {
	if a < b {
		return Pair{a, b}
	}
	return Pair{b, a}
}

// Separators maps every unordered pair of distinct states to its shortest
// separating sequence.
type Separators map[Pair]fsm.Sequence

// Get returns the separating sequence for (p, q), or an empty sequence if p
// == q or the pair was never separated (non-reduced machine).
func (s Separators) Get(p, q fsm.State) fsm.Sequence {
	if p == q {
		return fsm.Sequence{}
	}
	return s[makePair(p, q)]
}

// StatePairShortestSeparatingSequences computes the shortest separating
// sequence for every unordered pair of distinct states.
//
// Complexity: O(n^2 * rounds * m) where rounds <= n.
func StatePairShortestSeparatingSequences(f *fsm.FSM) Separators {
	n := f.NumStates()
	sep := make(Separators)

	// round 0: 1-step output equivalence.
	for p := 0; p < n; p++ {
		for q := p + 1; q < n; q++ {
			if w, ok := distinguishOneStep(f, fsm.State(p), fsm.State(q)); ok {
				sep[Pair{fsm.State(p), fsm.State(q)}] = w
			}
		}
	}

	// classes: group states by current indistinguishability (no separator found yet among tracked pairs).
	// Pairs found in a round are merged only after the round, so every pair
	// found in round r is extended from separators of length <= r+1 only.
	for round := 0; round < n; round++ {
		found := make(Separators)
		for p := 0; p < n; p++ {
			for q := p + 1; q < n; q++ {
				key := Pair{fsm.State(p), fsm.State(q)}
				if _, done := sep[key]; done {
					continue
				}
				if w, ok := distinguishViaSuccessors(f, fsm.State(p), fsm.State(q), sep); ok {
					found[key] = w
				}
			}
		}
		if len(found) == 0 {
			break
		}
		for key, w := range found {
			sep[key] = w
		}
	}

	return sep
}

// distinguishOneStep finds the lowest-indexed input whose immediate output
// differs between p and q.
func distinguishOneStep(f *fsm.FSM, p, q fsm.State) (fsm.Sequence, bool) {
	if f.IsOutputState() && f.StateOutput(p) != f.StateOutput(q) {
		return fsm.Sequence{fsm.StoutInput}, true
	}
	for a := 0; a < f.NumInputs(); a++ {
		if f.Output(p, fsm.Input(a)) != f.Output(q, fsm.Input(a)) {
			return fsm.Sequence{fsm.Input(a)}, true
		}
	}
	return nil, false
}

// distinguishViaSuccessors finds the lowest-indexed input a such that
// either the immediate output differs, or the successors (next(p,a),
// next(q,a)) already have a known separator; among ties, prefers the
// shortest resulting sequence then the lexicographically smaller one.
func distinguishViaSuccessors(f *fsm.FSM, p, q fsm.State, sep Separators) (fsm.Sequence, bool) {
	var best fsm.Sequence
	found := false
	for a := 0; a < f.NumInputs(); a++ {
		if f.Output(p, fsm.Input(a)) != f.Output(q, fsm.Input(a)) {
			candidate := fsm.Sequence{fsm.Input(a)}
			if !found || isBetter(candidate, best) {
				best, found = candidate, true
			}
			continue
		}
		np, nq := f.Next(p, fsm.Input(a)), f.Next(q, fsm.Input(a))
		if np == fsm.NullState || nq == fsm.NullState || np == nq {
			continue
		}
		tail, ok := sep[makePair(np, nq)]
		if !ok {
			continue
		}
		candidate := append(fsm.Sequence{fsm.Input(a)}, tail...)
		if !found || isBetter(candidate, best) {
			best, found = candidate, true
		}
	}
	return best, found
}

// isBetter reports whether a should replace b as the current best
// candidate: shorter wins, then lexicographically smaller.
func isBetter(a, b fsm.Sequence) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// SplitNode is one node of a splitting tree: internal nodes carry the
// sequence Seq that refines Parent's states; Children groups the non-empty
// equivalence classes of States under λ*(., Seq). A leaf has a nil Seq;
// a leaf with len(States) > 1 witnesses that the machine is not reduced.
type SplitNode struct {
	States   []fsm.State
	Seq      fsm.Sequence
	Children []*SplitNode
}

// IsLeaf reports whether n has no children.
func (n *SplitNode) IsLeaf() bool { return len(n.Children) == 0 }

// BuildSplittingTree builds the splitting tree for f, per §3/§4.E: the root
// holds all states; each node picks the shortest pairwise separating
// sequence (from StatePairShortestSeparatingSequences) that separates some
// pair still inside its block, and recurses into the non-empty equivalence
// classes of the block under that sequence. A block containing no
// internally-separable pair becomes a leaf (reduced iff every leaf is a
// singleton).
//
// Reusing the precomputed pairwise separators (rather than brute-force
// searching every candidate sequence at each node) keeps this polynomial in
// n: O(n^2) separators computed once, then O(n) nodes each doing O(n^2)
// work to find its splitting pair.
func BuildSplittingTree(f *fsm.FSM) *SplitNode {
	sep := StatePairShortestSeparatingSequences(f)
	all := make([]fsm.State, f.NumStates())
	for i := range all {
		all[i] = fsm.State(i)
	}
	root := &SplitNode{States: all}
	split(f, root, sep)
	return root
}

func split(f *fsm.FSM, node *SplitNode, sep Separators) {
	if len(node.States) <= 1 {
		return
	}
	w, groups := findSplittingSequence(f, node.States, sep)
	if w == nil {
		return // leaf: non-reducedness witness
	}
	node.Seq = w
	for _, g := range groups {
		child := &SplitNode{States: g}
		node.Children = append(node.Children, child)
		split(f, child, sep)
	}
}

// findSplittingSequence picks, among every pair of states still within
// states, the shortest (then lexicographically smallest) known separator,
// and returns it along with the partition of states it induces.
func findSplittingSequence(f *fsm.FSM, states []fsm.State, sep Separators) (fsm.Sequence, [][]fsm.State) {
	var best fsm.Sequence
	found := false
	for i := 0; i < len(states); i++ {
		for j := i + 1; j < len(states); j++ {
			w := sep.Get(states[i], states[j])
			if len(w) == 0 {
				continue
			}
			if !found || isBetter(w, best) {
				best, found = w, true
			}
		}
	}
	if !found {
		return nil, nil
	}
	groups, ok := partitionBy(f, states, best)
	if !ok {
		return nil, nil
	}
	return best, groups
}

// partitionBy groups states by their output-sequence signature under w,
// returning ok=false if every state produced the same signature (no split).
func partitionBy(f *fsm.FSM, states []fsm.State, w fsm.Sequence) ([][]fsm.State, bool) {
	type key = string
	groups := make(map[key][]fsm.State)
	var keys []key
	for _, s := range states {
		outs, _ := f.OutputAlong(s, w)
		sig := signatureOf(outs)
		if _, ok := groups[sig]; !ok {
			keys = append(keys, sig)
		}
		groups[sig] = append(groups[sig], s)
	}
	if len(keys) <= 1 {
		return nil, false
	}
	sort.Strings(keys)
	out := make([][]fsm.State, 0, len(keys))
	for _, k := range keys {
		out = append(out, groups[k])
	}
	return out, true
}

func signatureOf(outs []fsm.Output) string {
	buf := make([]byte, 0, 4*len(outs))
	for _, o := range outs {
		buf = appendSigInt(buf, int(o))
		buf = append(buf, ',')
	}
	return string(buf)
}

func appendSigInt(buf []byte, v int) []byte {
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

// LeafFor returns the leaf node containing q, and the sequence of node
// labels encountered from the root to that leaf (the root's Seq is first).
func LeafFor(root *SplitNode, q fsm.State) (*SplitNode, []fsm.Sequence) {
	var path []fsm.Sequence
	cur := root
	for !cur.IsLeaf() {
		path = append(path, cur.Seq)
		next := childContaining(cur, q)
		if next == nil {
			break
		}
		cur = next
	}
	return cur, path
}

func childContaining(n *SplitNode, q fsm.State) *SplitNode {
	for _, c := range n.Children {
		for _, s := range c.States {
			if s == q {
				return c
			}
		}
	}
	return nil
}
