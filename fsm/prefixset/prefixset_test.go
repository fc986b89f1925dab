package prefixset_test

import (
	"testing"

	"github.com/dragosv/fsmkit/fsm"
	"github.com/dragosv/fsmkit/fsm/prefixset"
	"github.com/stretchr/testify/assert"
)

func TestSet_InsertContains(t *testing.T) {
	s := prefixset.New()
	seq := fsm.Sequence{0, 1, 0}
	assert.False(t, s.Contains(seq))
	s.Insert(seq)
	assert.True(t, s.Contains(seq))
	assert.Equal(t, 1, s.Len())

	// idempotent
	s.Insert(seq)
	assert.Equal(t, 1, s.Len())
}

func TestSet_PrefixIsNotContained(t *testing.T) {
	s := prefixset.New()
	s.Insert(fsm.Sequence{0, 1, 0})
	assert.False(t, s.Contains(fsm.Sequence{0, 1}))
}

func TestSet_GetMaximalSequences_DropsPrefixes(t *testing.T) {
	s := prefixset.New()
	s.Insert(fsm.Sequence{0})
	s.Insert(fsm.Sequence{0, 1})
	s.Insert(fsm.Sequence{1})
	s.Insert(fsm.Sequence{1, 0})
	s.Insert(fsm.Sequence{1, 0, 1})

	max := s.GetMaximalSequences()
	assert.ElementsMatch(t, []fsm.Sequence{{0, 1}, {1, 0, 1}}, max)
}

func TestMinimize_Idempotent(t *testing.T) {
	seqs := []fsm.Sequence{{0}, {0, 1}, {0}, {1}}
	a := prefixset.Minimize(seqs)
	b := prefixset.Minimize(append(append([]fsm.Sequence{}, seqs...), seqs...))
	assert.ElementsMatch(t, a, b)
	assert.LessOrEqual(t, len(a), len(seqs))

	for _, orig := range seqs {
		found := false
		for _, m := range a {
			if m.HasPrefix(orig) {
				found = true
				break
			}
		}
		assert.True(t, found, "original %v should have a prefix-extension in maximal set", orig)
	}
}
