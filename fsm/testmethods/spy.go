package testmethods

import (
	"github.com/dragosv/fsmkit/fsm"
	"github.com/dragosv/fsmkit/fsm/basicsets"
	"github.com/dragosv/fsmkit/fsm/identifiers"
	"github.com/dragosv/fsmkit/fsm/suite"
)

// separatorFor resolves the discriminator appended when SPY/SPYH confirms
// the state end: PolicyVerifyingSet substitutes the state's SVS whenever one
// exists; otherwise (and for PolicyFull) the full harmonized set is used.
func separatorFor(o Options, end fsm.State, vset []fsm.Sequence, hsiByState [][]fsm.Sequence) []fsm.Sequence {
	if int(end) < 0 {
		return nil
	}
	if o.ConfirmationPolicy == PolicyVerifyingSet && int(end) < len(vset) && len(vset[end]) > 0 {
		return []fsm.Sequence{vset[end]}
	}
	if int(end) < len(hsiByState) {
		return hsiByState[end]
	}
	return nil
}

// SPY extends the transition cover by appending, for every end state
// reached, a separator resolved per the confirmation policy (§4.G). With the
// default PolicyFull it appends the same full harmonized set as HSI;
// PolicyVerifyingSet substitutes each confirmable state's SVS where one
// exists, typically shortening the suite.
func SPY(f *fsm.FSM, k int, opts ...Option) []fsm.Sequence {
	if k < 0 || !applicable(f) {
		return nil
	}
	o := resolveOptions(opts)
	q := basicsets.StateCover(f, false)
	p := basicsets.TransitionCover(f, false)
	qp := dedupSequences(q, p)
	tk := basicsets.TraversalSet(f, k)
	vset := identifiers.VerifyingSet(f)
	hsiByState := identifiers.HSI(f)

	out := concat3(qp, tk, func(prefix, middle fsm.Sequence) []fsm.Sequence {
		end := f.EndStatePath(0, prefix.Concat(middle))
		if end == fsm.WrongState {
			return nil
		}
		return separatorFor(o, end, vset, hsiByState)
	})
	return suite.Minimize(out)
}

// SPYH is SPY using H's adaptive single-separator choice in place of
// appending the whole resolved separator set (§4.G).
func SPYH(f *fsm.FSM, k int, opts ...Option) []fsm.Sequence {
	if k < 0 || !applicable(f) {
		return nil
	}
	o := resolveOptions(opts)
	q := basicsets.StateCover(f, false)
	p := basicsets.TransitionCover(f, false)
	qp := dedupSequences(q, p)
	tk := basicsets.TraversalSet(f, k)
	vset := identifiers.VerifyingSet(f)
	hsiByState := identifiers.HSI(f)

	emitted := make([]fsm.Sequence, 0)
	var out []fsm.Sequence
	for _, prefix := range qp {
		for _, middle := range tk {
			base := prefix.Concat(middle)
			end := f.EndStatePath(0, base)
			if end == fsm.WrongState {
				out = append(out, base)
				emitted = append(emitted, base)
				continue
			}
			candidates := separatorFor(o, end, vset, hsiByState)
			if len(candidates) == 0 {
				out = append(out, base)
				emitted = append(emitted, base)
				continue
			}
			w := pickSharingMostPrefix(base, candidates, emitted)
			full := base.Concat(w)
			out = append(out, full)
			emitted = append(emitted, full)
		}
	}
	return suite.Minimize(out)
}
