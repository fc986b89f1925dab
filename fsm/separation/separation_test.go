package separation_test

import (
	"testing"

	"github.com/dragosv/fsmkit/fsm"
	"github.com/dragosv/fsmkit/fsm/separation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildMealyR4 mirrors the fixture used across package test suites: a
// 4-state, reduced, strongly-connected Mealy machine.
func buildMealyR4(t *testing.T) *fsm.FSM {
	t.Helper()
	m, err := fsm.NewFSM(fsm.Mealy, 4, 2, 2)
	require.NoError(t, err)
	trans := [][2]int{{1, 2}, {2, 3}, {3, 0}, {0, 1}}
	outs := [][2]int{{0, 1}, {1, 0}, {0, 0}, {1, 1}}
	for s, row := range trans {
		for a, target := range row {
			require.NoError(t, m.SetTransition(fsm.State(s), fsm.Input(a), fsm.State(target)))
			require.NoError(t, m.SetOutput(fsm.State(s), fsm.Input(a), fsm.Output(outs[s][a])))
		}
	}
	return m
}

func TestSeparatingSequences_ActuallySeparate(t *testing.T) {
	m := buildMealyR4(t)
	sep := separation.StatePairShortestSeparatingSequences(m)

	for p := fsm.State(0); p < 4; p++ {
		for q := p + 1; q < 4; q++ {
			w := sep.Get(p, q)
			require.NotEmpty(t, w, "states %d,%d should be separable in a reduced machine", p, q)
			assert.LessOrEqual(t, len(w), 3) // n-1

			outP, _ := m.OutputAlong(p, w)
			outQ, _ := m.OutputAlong(q, w)
			assert.NotEqual(t, outP, outQ)
		}
	}
}

func TestSplittingTree_LeavesAreSingletonsWhenReduced(t *testing.T) {
	m := buildMealyR4(t)
	require.True(t, m.IsReduced())

	root := separation.BuildSplittingTree(m)
	var leaves [][]fsm.State
	var walk func(n *separation.SplitNode)
	walk = func(n *separation.SplitNode) {
		if n.IsLeaf() {
			leaves = append(leaves, n.States)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)

	total := 0
	for _, l := range leaves {
		assert.Len(t, l, 1)
		total += len(l)
	}
	assert.Equal(t, 4, total)
}

func TestSplittingTree_WitnessesNonReduced(t *testing.T) {
	m, err := fsm.NewFSM(fsm.Mealy, 3, 1, 2)
	require.NoError(t, err)
	require.NoError(t, m.SetTransition(0, 0, 1))
	require.NoError(t, m.SetTransition(1, 0, 0))
	require.NoError(t, m.SetTransition(2, 0, 0))
	require.NoError(t, m.SetOutput(0, 0, 0))
	require.NoError(t, m.SetOutput(1, 0, 1))
	require.NoError(t, m.SetOutput(2, 0, 1))

	require.False(t, m.IsReduced())
	root := separation.BuildSplittingTree(m)

	var hasMultiLeaf bool
	var walk func(n *separation.SplitNode)
	walk = func(n *separation.SplitNode) {
		if n.IsLeaf() {
			if len(n.States) > 1 {
				hasMultiLeaf = true
			}
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	assert.True(t, hasMultiLeaf)
}

func TestLeafFor_PathLabelsAreNodeSequences(t *testing.T) {
	m := buildMealyR4(t)
	root := separation.BuildSplittingTree(m)
	leaf, path := separation.LeafFor(root, 2)
	require.Len(t, leaf.States, 1)
	assert.Equal(t, fsm.State(2), leaf.States[0])
	assert.NotEmpty(t, path)
}
