package testmethods_test

import (
	"testing"

	"github.com/dragosv/fsmkit/fsm"
	"github.com/dragosv/fsmkit/fsm/testmethods"
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

func buildMooreR5(t *testing.T) *fsm.FSM {
	t.Helper()
	m, err := fsm.NewFSM(fsm.Moore, 5, 1, 5)
	require.NoError(t, err)
	for s := 0; s < 5; s++ {
		require.NoError(t, m.SetTransition(fsm.State(s), 0, fsm.State((s+1)%5)))
		require.NoError(t, m.SetStateOutput(fsm.State(s), fsm.Output(s)))
	}
	return m
}

// noPrefixOfAnother asserts that no member of seqs is a proper prefix of
// another, per the suite-minimiser normal form every method must return.
func noPrefixOfAnother(t *testing.T, seqs []fsm.Sequence) {
	t.Helper()
	for i, a := range seqs {
		for j, b := range seqs {
			if i == j {
				continue
			}
			assert.False(t, len(a) < len(b) && b.HasPrefix(a), "sequence %v is a prefix of %v", a, b)
		}
	}
}

func TestW_NegativeK(t *testing.T) {
	m := buildMealyR4(t)
	assert.Nil(t, testmethods.W(m, -1))
}

func TestW_NotApplicable(t *testing.T) {
	m, err := fsm.NewFSM(fsm.Mealy, 3, 1, 2)
	require.NoError(t, err)
	require.NoError(t, m.SetTransition(0, 0, 1))
	require.NoError(t, m.SetTransition(1, 0, 0))
	require.NoError(t, m.SetTransition(2, 0, 0))
	require.NoError(t, m.SetOutput(0, 0, 0))
	require.NoError(t, m.SetOutput(1, 0, 1))
	require.NoError(t, m.SetOutput(2, 0, 1))
	assert.Nil(t, testmethods.W(m, 0))
}

func TestW_ProducesPrefixFreeSuite(t *testing.T) {
	m := buildMealyR4(t)
	suite := testmethods.W(m, 0)
	require.NotEmpty(t, suite)
	noPrefixOfAnother(t, suite)
}

func TestWp_ShorterOrEqualToW(t *testing.T) {
	m := buildMealyR4(t)
	wSuite := testmethods.W(m, 1)
	wpSuite := testmethods.Wp(m, 1)
	require.NotEmpty(t, wSuite)
	require.NotEmpty(t, wpSuite)
	noPrefixOfAnother(t, wpSuite)
	assert.LessOrEqual(t, totalLen(wpSuite), totalLen(wSuite))
}

// totalLen sums the lengths of every sequence in a suite, the coarse size
// measure Wp is expected not to exceed relative to W.
func totalLen(suite []fsm.Sequence) int {
	n := 0
	for _, w := range suite {
		n += len(w)
	}
	return n
}

func TestHSIMethod_ProducesNonEmptySuite(t *testing.T) {
	m := buildMealyR4(t)
	s := testmethods.HSI(m, 1)
	require.NotEmpty(t, s)
	noPrefixOfAnother(t, s)
}

func TestHMethod_ProducesNonEmptySuite(t *testing.T) {
	m := buildMealyR4(t)
	s := testmethods.H(m, 1)
	require.NotEmpty(t, s)
	noPrefixOfAnother(t, s)
}

func TestSPY_DefaultPolicy(t *testing.T) {
	m := buildMealyR4(t)
	s := testmethods.SPY(m, 0)
	require.NotEmpty(t, s)
	noPrefixOfAnother(t, s)
}

func TestSPY_VerifyingSetPolicy(t *testing.T) {
	m := buildMealyR4(t)
	s := testmethods.SPY(m, 0, testmethods.WithConfirmationPolicy(testmethods.PolicyVerifyingSet))
	require.NotEmpty(t, s)
	noPrefixOfAnother(t, s)
}

func TestSPYH_ProducesNonEmptySuite(t *testing.T) {
	m := buildMealyR4(t)
	s := testmethods.SPYH(m, 0)
	require.NotEmpty(t, s)
	noPrefixOfAnother(t, s)
}

func TestSVSMethod_Moore(t *testing.T) {
	m := buildMooreR5(t)
	s := testmethods.SVSMethod(m, 0)
	require.NotEmpty(t, s)
	noPrefixOfAnother(t, s)
}

func TestSVSMethod_Mealy(t *testing.T) {
	m := buildMealyR4(t)
	s := testmethods.SVSMethod(m, 0)
	require.NotEmpty(t, s)
}

func TestC_ProducesWalkableSequence(t *testing.T) {
	m := buildMealyR4(t)
	seq := testmethods.C(m, 0)
	require.NotEmpty(t, seq)

	// Walking the sequence from state 0 must never fall off the defined
	// transition relation.
	end := m.EndStatePath(0, seq)
	assert.NotEqual(t, fsm.WrongState, end)
}

func TestC_NegativeK(t *testing.T) {
	m := buildMealyR4(t)
	assert.Empty(t, testmethods.C(m, -1))
}

func TestMa_ProducesWalkableSequence(t *testing.T) {
	m := buildMealyR4(t)
	seq := testmethods.Ma(m, 0)
	require.NotEmpty(t, seq)
	end := m.EndStatePath(0, seq)
	assert.NotEqual(t, fsm.WrongState, end)
}

func TestMra_ProducesWalkableSequence(t *testing.T) {
	m := buildMealyR4(t)
	seq := testmethods.Mra(m, 0)
	require.NotEmpty(t, seq)
	end := m.EndStatePath(0, seq)
	assert.NotEqual(t, fsm.WrongState, end)
}

func TestMa_NegativeK(t *testing.T) {
	m := buildMealyR4(t)
	assert.Empty(t, testmethods.Ma(m, -1))
}

func TestMra_NegativeK(t *testing.T) {
	m := buildMealyR4(t)
	assert.Empty(t, testmethods.Mra(m, -1))
}

// TestMa_Mra_ValidOnLargerMachine exercises a bigger ring than buildMealyR4,
// giving Ma's full-HSI confirmation and Mra's single-separator confirmation
// more states and transitions to stitch together and confirm.
func TestMa_Mra_ValidOnLargerMachine(t *testing.T) {
	m := buildMealyR6(t)

	ma := testmethods.Ma(m, 0)
	require.NotEmpty(t, ma)
	assert.NotEqual(t, fsm.WrongState, m.EndStatePath(0, ma))

	mra := testmethods.Mra(m, 0)
	require.NotEmpty(t, mra)
	assert.NotEqual(t, fsm.WrongState, m.EndStatePath(0, mra))
}

// buildMealyR6 is a 6-state ring where every state carries its own unique
// pair of output symbols, so the machine is reduced (any two states are
// already separated by a single input) and strongly connected.
func buildMealyR6(t *testing.T) *fsm.FSM {
	t.Helper()
	m, err := fsm.NewFSM(fsm.Mealy, 6, 2, 12)
	require.NoError(t, err)
	for s := 0; s < 6; s++ {
		require.NoError(t, m.SetTransition(fsm.State(s), 0, fsm.State((s+1)%6)))
		require.NoError(t, m.SetTransition(fsm.State(s), 1, fsm.State((s+2)%6)))
		require.NoError(t, m.SetOutput(fsm.State(s), 0, fsm.Output(2*s)))
		require.NoError(t, m.SetOutput(fsm.State(s), 1, fsm.Output(2*s+1)))
	}
	return m
}
