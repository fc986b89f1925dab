package shortestpath_test

import (
	"testing"

	"github.com/dragosv/fsmkit/fsm"
	"github.com/dragosv/fsmkit/fsm/shortestpath"
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

func TestAllShortestPaths_Ring(t *testing.T) {
	m := ring(t, 4)
	all := shortestpath.AllShortestPaths(m)

	path := shortestpath.GetShortestPath(m, 0, 3, all)
	assert.Equal(t, fsm.Sequence{0, 0, 0}, path)

	end := m.EndStatePath(0, path)
	assert.Equal(t, fsm.State(3), end)
}

func TestGetShortestPath_SameState(t *testing.T) {
	m := ring(t, 3)
	all := shortestpath.AllShortestPaths(m)
	assert.Equal(t, fsm.Sequence{}, shortestpath.GetShortestPath(m, 1, 1, all))
}

func TestGetShortestPath_Unreachable(t *testing.T) {
	m, err := fsm.NewFSM(fsm.Mealy, 2, 1, 1)
	require.NoError(t, err)
	require.NoError(t, m.SetTransition(0, 0, 1))
	require.NoError(t, m.SetOutput(0, 0, 0))
	// state 1 has no outgoing transition; 0 is unreachable from 1.
	all := shortestpath.AllShortestPaths(m)
	assert.Equal(t, fsm.Sequence{}, shortestpath.GetShortestPath(m, 1, 0, all))
}
