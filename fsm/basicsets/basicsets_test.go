package basicsets_test

import (
	"testing"

	"github.com/dragosv/fsmkit/fsm"
	"github.com/dragosv/fsmkit/fsm/basicsets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ring(t *testing.T, n int) *fsm.FSM {
	t.Helper()
	m, err := fsm.NewFSM(fsm.Mealy, n, 1, 1)
	require.NoError(t, err)
	for s := 0; s < n; s++ {
		require.NoError(t, m.SetTransition(fsm.State(s), 0, fsm.State((s+1)%n)))
		require.NoError(t, m.SetOutput(fsm.State(s), 0, 0))
	}
	return m
}

func TestStateCover_OneShortestAccessPerState(t *testing.T) {
	m := ring(t, 4)
	cover := basicsets.StateCover(m, false)
	require.Len(t, cover, 4)

	seen := map[fsm.State]int{}
	for _, seq := range cover {
		end := m.EndStatePath(0, seq)
		seen[end]++
	}
	for s := fsm.State(0); s < 4; s++ {
		assert.Equal(t, 1, seen[s], "state %d should have exactly one access sequence", s)
	}
}

func TestTransitionCover_ExtendsStateCover(t *testing.T) {
	m := ring(t, 3)
	p := basicsets.TransitionCover(m, false)
	assert.Len(t, p, 3*1) // |Q| * |Sigma|
	for _, seq := range p {
		assert.NotEqual(t, fsm.WrongState, m.EndStatePath(0, seq))
	}
}

func TestTraversalSet_NegativeK(t *testing.T) {
	m := ring(t, 3)
	assert.Nil(t, basicsets.TraversalSet(m, -1))
}

func TestTraversalSet_IncludesEmptyAndBoundedLength(t *testing.T) {
	m := ring(t, 3)
	set := basicsets.TraversalSet(m, 2)
	foundEmpty := false
	for _, seq := range set {
		assert.LessOrEqual(t, len(seq), 2)
		if len(seq) == 0 {
			foundEmpty = true
		}
		assert.NotEqual(t, fsm.WrongState, m.EndStatePath(0, seq))
	}
	assert.True(t, foundEmpty)
}
