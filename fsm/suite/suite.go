// Package suite provides the canonical normal form every test-suite and
// checking-sequence generator in this module returns: a prefix-free,
// duplicate-free set of sequences (§4.G).
package suite

import (
	"github.com/dragosv/fsmkit/fsm"
	"github.com/dragosv/fsmkit/fsm/prefixset"
)

// Minimize reduces seqs to their maximal elements under the prefix order:
// any sequence that is a proper prefix of another member is dropped, and
// duplicates collapse to one entry. The result is unordered.
func Minimize(seqs []fsm.Sequence) []fsm.Sequence {
	return prefixset.Minimize(seqs)
}
