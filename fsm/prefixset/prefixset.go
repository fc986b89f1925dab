// Package prefixset implements a trie of input sequences supporting
// insertion and extraction of the maximal-length sequences it holds — the
// data substrate every testing method folds its candidate sequences through
// before returning a result (§4.B, §4.H).
//
// What
//
//   - Insert(seq) is idempotent: inserting the same sequence twice is a
//     no-op.
//   - Contains(seq) reports whether seq was inserted (exactly, as a
//     terminal node — not merely as a prefix of something longer).
//   - GetMaximalSequences() returns every terminal that has no terminal
//     descendant: the set's prefix-free normal form.
//
// Why
//
//	Every checking-experiment method in this module builds candidate
//	sequences independently and may emit one sequence that is a prefix of
//	another; running the whole batch through a Set before returning keeps
//	the returned test suite free of redundant shorter members (§4.H).
//
// Determinism
//
//	GetMaximalSequences walks children in ascending Input order, so its
//	output order is a deterministic function of insertion content (not
//	insertion order).
package prefixset

import (
	"sort"

	"github.com/dragosv/fsmkit/fsm"
)

// node is one trie position: a terminal flag and a map of children keyed by
// the next input.
type node struct {
	terminal bool
	children map[fsm.Input]*node
}

func newNode() *node {
	return &node{children: make(map[fsm.Input]*node)}
}

// Set is a trie of fsm.Sequence values.
type Set struct {
	root *node
	size int
}

// New returns an empty Set.
func New() *Set {
	return &Set{root: newNode()}
}

// Insert adds seq to the set. Idempotent.
//
// Complexity: O(len(seq)).
func (s *Set) Insert(seq fsm.Sequence) {
	cur := s.root
	for _, a := range seq {
		next, ok := cur.children[a]
		if !ok {
			next = newNode()
			cur.children[a] = next
		}
		cur = next
	}
	if !cur.terminal {
		cur.terminal = true
		s.size++
	}
}

// InsertAll inserts every sequence in seqs.
func (s *Set) InsertAll(seqs []fsm.Sequence) {
	for _, seq := range seqs {
		s.Insert(seq)
	}
}

// Contains reports whether seq was inserted as a terminal sequence.
//
// Complexity: O(len(seq)).
func (s *Set) Contains(seq fsm.Sequence) bool {
	cur := s.root
	for _, a := range seq {
		next, ok := cur.children[a]
		if !ok {
			return false
		}
		cur = next
	}
	return cur.terminal
}

// Len returns the number of distinct sequences inserted.
func (s *Set) Len() int { return s.size }

// GetMaximalSequences returns every terminal sequence in the set that is not
// itself a proper prefix of another terminal sequence: a post-order walk
// emits a terminal only when none of its descendants is also terminal.
//
// Complexity: O(number of trie nodes).
func (s *Set) GetMaximalSequences() []fsm.Sequence {
	var out []fsm.Sequence
	var walk func(n *node, prefix fsm.Sequence) bool // returns whether a terminal descendant was emitted
	walk = func(n *node, prefix fsm.Sequence) bool {
		keys := make([]fsm.Input, 0, len(n.children))
		for k := range n.children {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

		descendantTerminal := false
		for _, k := range keys {
			child := n.children[k]
			childPrefix := append(append(fsm.Sequence(nil), prefix...), k)
			if walk(child, childPrefix) {
				descendantTerminal = true
			}
		}
		if n.terminal && !descendantTerminal {
			out = append(out, append(fsm.Sequence(nil), prefix...))
			return true
		}
		return n.terminal || descendantTerminal
	}
	walk(s.root, fsm.Sequence{})
	return out
}

// Minimize is a convenience one-shot: it inserts every sequence in seqs into
// a fresh Set and returns its maximal sequences.
func Minimize(seqs []fsm.Sequence) []fsm.Sequence {
	s := New()
	s.InsertAll(seqs)
	return s.GetMaximalSequences()
}
