package fsm

// InterleaveStout applies the STOUT interleaving rule (§4.F) to a set of
// sequences built for an output-state machine: a StoutInput is inserted
// after every real input that is not already followed by one, and then the
// whole set is made to agree on whether it starts with StoutInput — every
// sequence gets a leading StoutInput if any sequence in the set already has
// one, otherwise any leading StoutInput is stripped. Sequences built for a
// machine where IsOutputState() is false are returned unchanged (StoutInput
// interleaving only applies to output-state machines).
//
// This keeps observation alignment consistent across a discriminating set:
// every sequence in the returned set produces one output symbol per real
// input plus one more for the trailing state, with the leading position
// agreeing across the whole set.
func InterleaveStout(f *FSM, seqs []Sequence) []Sequence {
	if !f.IsOutputState() || len(seqs) == 0 {
		return seqs
	}

	withTrailing := make([]Sequence, len(seqs))
	startsWithStout := false
	for i, s := range seqs {
		withTrailing[i] = insertTrailingStout(s)
		if len(withTrailing[i]) > 0 && withTrailing[i][0] == StoutInput {
			startsWithStout = true
		}
	}

	out := make([]Sequence, len(withTrailing))
	for i, s := range withTrailing {
		switch {
		case startsWithStout && (len(s) == 0 || s[0] != StoutInput):
			out[i] = append(Sequence{StoutInput}, s...)
		case !startsWithStout && len(s) > 0 && s[0] == StoutInput:
			out[i] = append(Sequence(nil), s[1:]...)
		default:
			out[i] = s
		}
	}
	return out
}

// insertTrailingStout inserts StoutInput after every real input not already
// followed by one.
func insertTrailingStout(s Sequence) Sequence {
	out := make(Sequence, 0, 2*len(s))
	for i, a := range s {
		out = append(out, a)
		if a == StoutInput {
			continue
		}
		if i+1 < len(s) && s[i+1] == StoutInput {
			continue
		}
		out = append(out, StoutInput)
	}
	return out
}
