package testmethods

import (
	"github.com/dragosv/fsmkit/fsm"
	"github.com/dragosv/fsmkit/fsm/basicsets"
	"github.com/dragosv/fsmkit/fsm/identifiers"
	"github.com/dragosv/fsmkit/fsm/suite"
)

// SVSMethod is the HSI-method with each end state's discriminator narrowed
// to its SVS whenever one exists (falling back to the full harmonized set
// otherwise). Because state indices are always a dense [0, n) range in this
// module's FSM representation, the source's isCompact precondition holds
// unconditionally. When f.IsOutputState(), extraStates is doubled before
// building T_k (STOUT follows every real input during traversal, so a
// k-extra-state traversal needs twice as many real-input steps), and every
// appended identifier is STOUT-interleaved (§4.G).
func SVSMethod(f *fsm.FSM, k int) []fsm.Sequence {
	if k < 0 || !applicable(f) {
		return nil
	}
	withStout := f.IsOutputState()
	keff := k
	if withStout {
		keff = k * 2
	}

	q := basicsets.StateCover(f, withStout)
	p := basicsets.TransitionCover(f, withStout)
	qp := dedupSequences(q, p)
	tk := basicsets.TraversalSet(f, keff)
	vset := identifiers.VerifyingSet(f)
	hsiByState := identifiers.HSI(f)

	out := concat3(qp, tk, func(prefix, middle fsm.Sequence) []fsm.Sequence {
		end := f.EndStatePath(0, prefix.Concat(middle))
		if end == fsm.WrongState {
			return nil
		}
		var seps []fsm.Sequence
		if int(end) < len(vset) && len(vset[end]) > 0 {
			seps = []fsm.Sequence{vset[end]}
		} else if int(end) < len(hsiByState) {
			seps = hsiByState[end]
		}
		if withStout && len(seps) > 0 {
			seps = fsm.InterleaveStout(f, seps)
		}
		return seps
	})
	return suite.Minimize(out)
}
