// Package testmethods assembles the checking-experiment generators: W, Wp,
// HSI, H, SPY, SPYH, SVSMethod (test suites of input sequences) and C, Ma,
// Mra (single checking sequences). Every generator takes the FSM under
// specification and an extra-state bound k, and returns the empty result
// for k < 0 or for an FSM that is not reduced and strongly connected — the
// shape every method in this family requires to guarantee fault coverage
// (§4.G).
package testmethods

import (
	"github.com/dragosv/fsmkit/fsm"
	"github.com/dragosv/fsmkit/fsm/basicsets"
	"github.com/dragosv/fsmkit/fsm/identifiers"
	"github.com/dragosv/fsmkit/fsm/separation"
	"github.com/dragosv/fsmkit/fsm/suite"
)

// applicable reports whether f qualifies for every method in this package:
// reduced (no two states behaviourally equivalent) and strongly connected
// (every state reachable from every other).
func applicable(f *fsm.FSM) bool {
	return f.IsReduced() && f.IsStronglyConnected()
}

// dedupSequences merges a and b, keeping each distinct sequence once.
func dedupSequences(a, b []fsm.Sequence) []fsm.Sequence {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]fsm.Sequence, 0, len(a)+len(b))
	add := func(s fsm.Sequence) {
		key := seqKey(s)
		if !seen[key] {
			seen[key] = true
			out = append(out, s)
		}
	}
	for _, s := range a {
		add(s)
	}
	for _, s := range b {
		add(s)
	}
	return out
}

func seqKey(s fsm.Sequence) string {
	buf := make([]byte, 0, 4*len(s))
	for _, a := range s {
		buf = append(buf, byte(a), byte(a>>8), ',')
	}
	return string(buf)
}

// concat3 emits prefix.middle.tail for every prefix in prefixes, every
// middle in middles, and every tail in tails. An empty tails set (nil or
// []fsm.Sequence{}) still emits prefix.middle with no tail appended, for end
// states that have no separator available.
func concat3(prefixes, middles []fsm.Sequence, tailsOf func(prefix, middle fsm.Sequence) []fsm.Sequence) []fsm.Sequence {
	var out []fsm.Sequence
	for _, p := range prefixes {
		for _, m := range middles {
			tails := tailsOf(p, m)
			if len(tails) == 0 {
				out = append(out, p.Concat(m))
				continue
			}
			for _, tail := range tails {
				out = append(out, p.Concat(m).Concat(tail))
			}
		}
	}
	return out
}

// W implements the W-method: (Q ∪ P) . T_k . W, where W is the whole
// machine's characterizing set (§4.G).
func W(f *fsm.FSM, k int) []fsm.Sequence {
	if k < 0 || !applicable(f) {
		return nil
	}
	q := basicsets.StateCover(f, false)
	p := basicsets.TransitionCover(f, false)
	qp := dedupSequences(q, p)
	tk := basicsets.TraversalSet(f, k)
	sep := separation.StatePairShortestSeparatingSequences(f)
	wGlobal := identifiers.CSet(f, sep)

	out := concat3(qp, tk, func(_, _ fsm.Sequence) []fsm.Sequence { return wGlobal })
	return suite.Minimize(out)
}

// Wp implements the Wp-method: Q . T_k . W ∪ P . T_k . W_{end(q.t)}, where
// W_{end} narrows the appended discriminator to the reached end state's own
// SCSet rather than the whole machine's characterizing set (§4.G).
func Wp(f *fsm.FSM, k int) []fsm.Sequence {
	if k < 0 || !applicable(f) {
		return nil
	}
	q := basicsets.StateCover(f, false)
	p := basicsets.TransitionCover(f, false)
	tk := basicsets.TraversalSet(f, k)
	sep := separation.StatePairShortestSeparatingSequences(f)
	wGlobal := identifiers.CSet(f, sep)

	part1 := concat3(q, tk, func(_, _ fsm.Sequence) []fsm.Sequence { return wGlobal })
	part2 := concat3(p, tk, func(prefix, middle fsm.Sequence) []fsm.Sequence {
		end := f.EndStatePath(0, prefix.Concat(middle))
		if end == fsm.WrongState {
			return nil
		}
		return identifiers.SCSet(f, end, sep)
	})

	out := dedupSequences(part1, part2)
	return suite.Minimize(out)
}

// HSI implements the HSI-method: (Q ∪ P) . T_k . H_{end(q.t)}, appending the
// full harmonized identifier of the reached end state (§4.G).
func HSI(f *fsm.FSM, k int) []fsm.Sequence {
	if k < 0 || !applicable(f) {
		return nil
	}
	q := basicsets.StateCover(f, false)
	p := basicsets.TransitionCover(f, false)
	qp := dedupSequences(q, p)
	tk := basicsets.TraversalSet(f, k)
	hsiByState := identifiers.HSI(f)

	out := concat3(qp, tk, func(prefix, middle fsm.Sequence) []fsm.Sequence {
		end := f.EndStatePath(0, prefix.Concat(middle))
		if end == fsm.WrongState || int(end) >= len(hsiByState) {
			return nil
		}
		return hsiByState[end]
	})
	return suite.Minimize(out)
}

// H implements the H-method: like HSI, but exactly one separator per
// extension is appended, chosen adaptively from the end state's harmonized
// set to maximise the shared prefix with sequences already emitted,
// minimising the total length of the returned suite (§4.G).
func H(f *fsm.FSM, k int) []fsm.Sequence {
	if k < 0 || !applicable(f) {
		return nil
	}
	q := basicsets.StateCover(f, false)
	p := basicsets.TransitionCover(f, false)
	qp := dedupSequences(q, p)
	tk := basicsets.TraversalSet(f, k)
	hsiByState := identifiers.HSI(f)

	emitted := make([]fsm.Sequence, 0)
	var out []fsm.Sequence
	for _, prefix := range qp {
		for _, middle := range tk {
			end := f.EndStatePath(0, prefix.Concat(middle))
			base := prefix.Concat(middle)
			if end == fsm.WrongState || int(end) >= len(hsiByState) || len(hsiByState[end]) == 0 {
				out = append(out, base)
				emitted = append(emitted, base)
				continue
			}
			w := pickSharingMostPrefix(base, hsiByState[end], emitted)
			full := base.Concat(w)
			out = append(out, full)
			emitted = append(emitted, full)
		}
	}
	return suite.Minimize(out)
}

// pickSharingMostPrefix chooses, among candidates, the sequence w such that
// base.Concat(w) shares the longest common prefix with some sequence
// already in emitted; ties break by shortest candidate then
// lexicographically smallest.
func pickSharingMostPrefix(base fsm.Sequence, candidates []fsm.Sequence, emitted []fsm.Sequence) fsm.Sequence {
	best := candidates[0]
	bestShared := -1
	for _, w := range candidates {
		full := base.Concat(w)
		shared := 0
		for _, e := range emitted {
			if s := commonPrefixLen(full, e); s > shared {
				shared = s
			}
		}
		if shared > bestShared || (shared == bestShared && isShorterOrSmaller(w, best)) {
			bestShared = shared
			best = w
		}
	}
	return best
}

func commonPrefixLen(a, b fsm.Sequence) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func isShorterOrSmaller(a, b fsm.Sequence) bool {
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
