// Package identifiers builds the discriminating structures testing methods
// append after a transfer sequence: PDS, ADS, SVS, the verifying set, SCSet,
// CSet, and HSI (§4.F).
//
// Every builder in this package returns a "structural-absence" zero value
// (an empty Sequence, a nil *ADSNode, or an empty entry in a Vec) rather
// than an error when its bounded or greedy search finds no such structure
// for the given machine — callers test for emptiness, per §7.
package identifiers

import (
	"sort"

	"github.com/dragosv/fsmkit/fsm"
	"github.com/dragosv/fsmkit/fsm/separation"
)

// searchBound caps the BFS in PDS and SVS: both are guaranteed (when they
// exist) to need no more than n*(n-1)/2 extensions for an n-state reduced
// machine; doubled here as slack.
func searchBound(n int) int {
	if n <= 1 {
		return 1
	}
	return n * (n - 1)
}

// candidateInputs lists the inputs PDS/ADS/SVS may extend a sequence with.
// On an output-state machine (Moore/DFA/DFSM) StoutInput is tried first,
// ahead of every real input: it is the only way to observe a state's own
// output without advancing, and a pair of states with identical successor
// behaviour but different StateOutput can be separated by nothing else
// (mirrors the StateOutput check separation.distinguishOneStep makes before
// its real-input loop). On a machine with no state outputs, StoutInput is
// not a meaningful observation and is omitted.
func candidateInputs(f *fsm.FSM) []fsm.Input {
	if !f.IsOutputState() {
		out := make([]fsm.Input, f.NumInputs())
		for a := range out {
			out[a] = fsm.Input(a)
		}
		return out
	}
	out := make([]fsm.Input, 0, f.NumInputs()+1)
	out = append(out, fsm.StoutInput)
	for a := 0; a < f.NumInputs(); a++ {
		out = append(out, fsm.Input(a))
	}
	return out
}

// PDS constructs a preset distinguishing sequence for f: a single input
// sequence under which every state produces a distinct output sequence.
// Returns an empty Sequence if none exists within the search bound (§4.F,
// §7 Structural-absence).
//
// Algorithm: BFS over (sequence, partition-of-states-by-output-signature),
// extending the shared sequence by one input per level — candidateInputs
// order (StoutInput first on an output-state machine, then ascending real
// input order), so the first discrete partition found is both shortest and
// the lexicographically smallest at that length — pruning branches where
// some state's transition becomes undefined.
func PDS(f *fsm.FSM) fsm.Sequence {
	n := f.NumStates()
	type frontierState struct {
		seq     fsm.Sequence
		current []fsm.State // current[origin] = state origin has reached
		sig     []string    // accumulated output signature per origin
	}
	start := frontierState{
		seq:     fsm.Sequence{},
		current: identityStates(n),
		sig:     make([]string, n),
	}
	if isDiscrete(start.sig) {
		return fsm.Sequence{}
	}

	queue := []frontierState{start}
	visited := map[string]bool{signatureKey(start.sig): true}

	for bound := searchBound(n); len(queue) > 0 && len(queue[0].seq) <= bound; {
		cur := queue[0]
		queue = queue[1:]

		for _, a := range candidateInputs(f) {
			next := extendFrontier(f, cur.current, cur.sig, a)
			if next == nil {
				continue
			}
			if isDiscrete(next) {
				return cur.seq.Append(a)
			}
			nextCurrent := make([]fsm.State, n)
			for s := 0; s < n; s++ {
				nextCurrent[s] = f.Next(cur.current[s], a)
			}
			key := signatureKey(next)
			for _, s := range nextCurrent {
				key += itoa(int(s)) + ","
			}
			if visited[key] {
				continue
			}
			visited[key] = true
			queue = append(queue, frontierState{
				seq:     cur.seq.Append(a),
				current: nextCurrent,
				sig:     next,
			})
		}
	}
	return fsm.Sequence{}
}

func identityStates(n int) []fsm.State {
	out := make([]fsm.State, n)
	for i := range out {
		out[i] = fsm.State(i)
	}
	return out
}

func isDiscrete(sig []string) bool {
	seen := make(map[string]bool, len(sig))
	for _, s := range sig {
		if seen[s] {
			return false
		}
		seen[s] = true
	}
	return true
}

func signatureKey(sig []string) string {
	out := ""
	for _, s := range sig {
		out += s + "\x00"
	}
	return out
}

// extendFrontier extends every origin's signature by the output observed
// applying input a from its current state. Returns nil if any origin's
// transition is undefined (the whole preset sequence would be invalid).
func extendFrontier(f *fsm.FSM, current []fsm.State, sig []string, a fsm.Input) []string {
	out := make([]string, len(current))
	for i, cur := range current {
		o := f.Output(cur, a)
		if o == fsm.WrongOutput {
			return nil
		}
		next := f.Next(cur, a)
		if next == fsm.NullState {
			return nil
		}
		out[i] = sig[i] + "|" + itoa(int(o))
	}
	return out
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// ADSNode is one node of an adaptive distinguishing sequence tree: an
// internal node carries the input to apply next; Children is keyed by the
// output observed in response. A leaf (Children == nil) identifies the
// single surviving candidate origin state.
type ADSNode struct {
	Candidates []fsm.State // origin states still consistent with observations so far
	Input      fsm.Input
	Children   map[fsm.Output]*ADSNode
}

// IsLeaf reports whether n has no children.
func (n *ADSNode) IsLeaf() bool { return len(n.Children) == 0 }

// ADS builds an adaptive distinguishing sequence tree for f, greedily
// choosing at each frontier node the input that maximises the number of
// resulting children — StoutInput included among the candidates on an
// output-state machine, since it is the only way to split two candidates
// whose successor behaviour is otherwise identical but whose own
// StateOutput differs. Returns nil if some node with more than one
// candidate has no input that splits it in a single step; the greedy
// construction does not look further ahead, so a nil result does not by
// itself show that no ADS exists.
func ADS(f *fsm.FSM) *ADSNode {
	root := &ADSNode{Candidates: identityStates(f.NumStates())}
	current := make(map[fsm.State]fsm.State, f.NumStates())
	for _, s := range root.Candidates {
		current[s] = s
	}
	if !buildADS(f, root, current) {
		return nil
	}
	return root
}

func buildADS(f *fsm.FSM, node *ADSNode, current map[fsm.State]fsm.State) bool {
	if len(node.Candidates) <= 1 {
		return true
	}

	var bestInput fsm.Input
	bestFound := false
	var bestGroups map[fsm.Output][]fsm.State
	bestCount := 1
	for _, a := range candidateInputs(f) {
		groups := make(map[fsm.Output][]fsm.State)
		valid := true
		for _, origin := range node.Candidates {
			o := f.Output(current[origin], a)
			if o == fsm.WrongOutput || f.Next(current[origin], a) == fsm.NullState {
				valid = false
				break
			}
			groups[o] = append(groups[o], origin)
		}
		if !valid {
			continue
		}
		if len(groups) > bestCount {
			bestCount = len(groups)
			bestInput = a
			bestFound = true
			bestGroups = groups
		}
	}

	if !bestFound {
		return false
	}

	node.Input = bestInput
	node.Children = make(map[fsm.Output]*ADSNode, len(bestGroups))
	var outs []fsm.Output
	for o := range bestGroups {
		outs = append(outs, o)
	}
	sort.Slice(outs, func(i, j int) bool { return outs[i] < outs[j] })

	for _, o := range outs {
		childCandidates := bestGroups[o]
		childCurrent := make(map[fsm.State]fsm.State, len(current))
		for k, v := range current {
			childCurrent[k] = v
		}
		for _, origin := range childCandidates {
			childCurrent[origin] = f.Next(current[origin], node.Input)
		}
		child := &ADSNode{Candidates: childCandidates}
		if !buildADS(f, child, childCurrent) {
			return false
		}
		node.Children[o] = child
	}
	return true
}

// SVS builds a state verifying sequence for q: a single preset sequence
// that separates q from every other state. Returns an empty Sequence if
// none exists (§4.F, §7).
//
// Algorithm: BFS tracking, alongside q's own walk, the shrinking set of
// states still indistinguishable from q by every output observed so far
// (candidateInputs tries StoutInput first on an output-state machine, so a
// state separable only by its own StateOutput is still found); succeeds
// when that set becomes {q}, fails if a round produces no shrinkage
// (frontier stagnation).
func SVS(f *fsm.FSM, q fsm.State) fsm.Sequence {
	n := f.NumStates()
	type frontier struct {
		seq       fsm.Sequence
		current   map[fsm.State]fsm.State // candidate origin -> current state
		candidate []fsm.State
	}
	all := identityStates(n)
	start := frontier{seq: fsm.Sequence{}, current: identityMap(all), candidate: all}
	if len(start.candidate) == 1 {
		return fsm.Sequence{}
	}

	bound := searchBound(n)
	queue := []frontier{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if len(cur.seq) > bound {
			continue
		}

		for _, a := range candidateInputs(f) {
			qNext := f.Next(cur.current[q], a)
			qOut := f.Output(cur.current[q], a)
			if qNext == fsm.NullState || qOut == fsm.WrongOutput {
				continue
			}
			var survivors []fsm.State
			nextCurrent := make(map[fsm.State]fsm.State, len(cur.current))
			for _, origin := range cur.candidate {
				st := cur.current[origin]
				if f.Output(st, a) == qOut && f.Next(st, a) != fsm.NullState {
					survivors = append(survivors, origin)
					nextCurrent[origin] = f.Next(st, a)
				}
			}
			if len(survivors) == 1 && survivors[0] == q {
				return cur.seq.Append(a)
			}
			if len(survivors) < len(cur.candidate) && len(survivors) > 0 {
				queue = append(queue, frontier{
					seq:       cur.seq.Append(a),
					current:   nextCurrent,
					candidate: survivors,
				})
			}
		}
	}
	return fsm.Sequence{}
}

func identityMap(states []fsm.State) map[fsm.State]fsm.State {
	out := make(map[fsm.State]fsm.State, len(states))
	for _, s := range states {
		out[s] = s
	}
	return out
}

// VerifyingSet returns, for every state q, SVS(f, q), or an empty Sequence
// at position q if none exists — a partial-failure Vec per §7.
func VerifyingSet(f *fsm.FSM) []fsm.Sequence {
	out := make([]fsm.Sequence, f.NumStates())
	for q := 0; q < f.NumStates(); q++ {
		out[q] = SVS(f, fsm.State(q))
	}
	return out
}

// SCSet returns a minimal-effort state characterizing set for q: a set of
// sequences that together separate q from every other state, built by
// greedy set cover over the pairwise separators from
// separation.StatePairShortestSeparatingSequences (each step takes the
// separator that separates q from the most still-uncovered states; ties go
// to the shorter, then lexicographically smaller, separator) — see
// DESIGN.md, Open Question resolution 5: this is a greedy approximation,
// not a provably minimum set.
func SCSet(f *fsm.FSM, q fsm.State, sep separation.Separators) []fsm.Sequence {
	n := f.NumStates()
	uncovered := make(map[fsm.State]bool, n-1)
	for s := 0; s < n; s++ {
		if fsm.State(s) != q {
			uncovered[fsm.State(s)] = true
		}
	}

	candidates := make([]fsm.Sequence, 0, n-1)
	seen := make(map[string]bool)
	for s := 0; s < n; s++ {
		if fsm.State(s) == q {
			continue
		}
		w := sep.Get(q, fsm.State(s))
		if len(w) == 0 {
			continue
		}
		key := sequenceKey(w)
		if !seen[key] {
			seen[key] = true
			candidates = append(candidates, w)
		}
	}
	sortSequences(candidates)

	var result []fsm.Sequence
	for len(uncovered) > 0 && len(candidates) > 0 {
		bestIdx, bestCovers := -1, 0
		var bestSet map[fsm.State]bool
		for i, w := range candidates {
			covers := coveredBy(f, q, w, uncovered)
			if len(covers) > bestCovers {
				bestCovers = len(covers)
				bestIdx = i
				bestSet = covers
			}
		}
		if bestIdx < 0 {
			break
		}
		result = append(result, candidates[bestIdx])
		for s := range bestSet {
			delete(uncovered, s)
		}
		candidates = append(candidates[:bestIdx], candidates[bestIdx+1:]...)
	}
	return result
}

// coveredBy returns the subset of uncovered states that w separates from q.
func coveredBy(f *fsm.FSM, q fsm.State, w fsm.Sequence, uncovered map[fsm.State]bool) map[fsm.State]bool {
	outQ, _ := f.OutputAlong(q, w)
	out := make(map[fsm.State]bool)
	for s := range uncovered {
		outS, _ := f.OutputAlong(s, w)
		if !equalOutputs(outQ, outS) {
			out[s] = true
		}
	}
	return out
}

func equalOutputs(a, b []fsm.Output) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CSet returns a characterizing set for the whole machine: the deduplicated
// union of SCSet(f, q) over every state q.
func CSet(f *fsm.FSM, sep separation.Separators) []fsm.Sequence {
	seen := make(map[string]bool)
	var out []fsm.Sequence
	for q := 0; q < f.NumStates(); q++ {
		for _, w := range SCSet(f, fsm.State(q), sep) {
			key := sequenceKey(w)
			if !seen[key] {
				seen[key] = true
				out = append(out, w)
			}
		}
	}
	sortSequences(out)
	return out
}

func sequenceKey(s fsm.Sequence) string {
	buf := make([]byte, 0, 4*len(s))
	for _, a := range s {
		buf = append(buf, byte(a), byte(a>>8), ',')
	}
	return string(buf)
}

func sortSequences(seqs []fsm.Sequence) {
	sort.Slice(seqs, func(i, j int) bool {
		a, b := seqs[i], seqs[j]
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
}

// HSI returns the harmonized state identifiers for every state: for state
// q, the set of labels along the root-to-leaf path of q in the splitting
// tree (§4.F). H_q is, by construction, a subset of a valid SCSet for q.
func HSI(f *fsm.FSM) [][]fsm.Sequence {
	root := separation.BuildSplittingTree(f)
	out := make([][]fsm.Sequence, f.NumStates())
	for q := 0; q < f.NumStates(); q++ {
		_, path := separation.LeafFor(root, fsm.State(q))
		out[q] = path
	}
	return out
}
