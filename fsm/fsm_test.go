package fsm_test

import (
	"strings"
	"testing"

	"github.com/dragosv/fsmkit/fsm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildMealyR4 builds a 4-state, reduced, strongly-connected Mealy machine
// with binary inputs/outputs shaped like a ring counter with a twist, used
// across several package test suites.
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

func TestFSM_BasicQueries(t *testing.T) {
	m := buildMealyR4(t)
	assert.Equal(t, 4, m.NumStates())
	assert.Equal(t, 2, m.NumInputs())
	assert.Equal(t, fsm.Mealy, m.Type())
	assert.True(t, m.IsOutputTransition())
	assert.False(t, m.IsOutputState())
	assert.Equal(t, fsm.State(1), m.Next(0, 0))
	assert.Equal(t, fsm.NullState, m.Next(0, fsm.Input(5)))
}

func TestFSM_OutputAlong(t *testing.T) {
	m := buildMealyR4(t)
	outs, end := m.OutputAlong(0, fsm.Sequence{0, 0, 1})
	require.Equal(t, fsm.State(0), end)
	assert.Equal(t, []fsm.Output{0, 1, 0}, outs)
}

func TestFSM_OutputAlong_Undefined(t *testing.T) {
	m := buildMealyR4(t)
	require.NoError(t, m.SetTransition(0, 0, fsm.NullState))
	outs, end := m.OutputAlong(0, fsm.Sequence{0, 1})
	assert.Equal(t, fsm.WrongState, end)
	assert.Empty(t, outs)
}

func TestFSM_IsReducedAndStronglyConnected(t *testing.T) {
	m := buildMealyR4(t)
	assert.True(t, m.IsReduced())
	assert.True(t, m.IsStronglyConnected())
}

func TestFSM_Minimize_NonReduced(t *testing.T) {
	// 3 states, states 1 and 2 behaviourally identical.
	m, err := fsm.NewFSM(fsm.Mealy, 3, 1, 2)
	require.NoError(t, err)
	require.NoError(t, m.SetTransition(0, 0, 1))
	require.NoError(t, m.SetTransition(1, 0, 0))
	require.NoError(t, m.SetTransition(2, 0, 0))
	require.NoError(t, m.SetOutput(0, 0, 0))
	require.NoError(t, m.SetOutput(1, 0, 1))
	require.NoError(t, m.SetOutput(2, 0, 1))

	original := m.Duplicate()
	minimized := m.Duplicate()
	n := minimized.Minimize()
	assert.Equal(t, 2, n)
	assert.False(t, fsm.AreIsomorphic(original, minimized))

	twice := minimized.Duplicate()
	twice.Minimize()
	assert.True(t, fsm.AreIsomorphic(twice, minimized))
}

func TestFSM_SaveLoadRoundTrip(t *testing.T) {
	m := buildMealyR4(t)
	var buf strings.Builder
	require.NoError(t, m.Encode(&buf))

	loaded, err := fsm.Decode(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.True(t, fsm.AreIsomorphic(m, loaded))
}

func TestFSM_Decode_BadFormat(t *testing.T) {
	_, err := fsm.Decode(strings.NewReader("not a number here"))
	assert.ErrorIs(t, err, fsm.ErrBadFileFormat)
}

func TestInterleaveStout(t *testing.T) {
	m, err := fsm.NewFSM(fsm.Moore, 2, 2, 2)
	require.NoError(t, err)
	require.NoError(t, m.SetTransition(0, 0, 1))
	require.NoError(t, m.SetTransition(1, 0, 0))
	require.NoError(t, m.SetStateOutput(0, 0))
	require.NoError(t, m.SetStateOutput(1, 1))

	in := []fsm.Sequence{{0, 1}, {fsm.StoutInput, 0}}
	out := fsm.InterleaveStout(m, in)
	require.Len(t, out, 2)
	for _, s := range out {
		assert.Equal(t, fsm.StoutInput, s[0])
	}
}
