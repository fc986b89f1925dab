package fsm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads a `.fsm` file and returns the FSM it describes, or a nil FSM
// and a non-nil error on any parse or structural failure — load never
// panics and never returns a partially-built FSM (§4.A, §7:
// File-format-invalid).
//
// Format (ASCII, whitespace-separated tokens):
//
//	line 1: "type states inputs outputs"   (type in 0..3: DFA, Moore, Mealy, DFSM)
//	next states*inputs tokens: the transition table, row-major, NullState
//	  (encoded as -1) permitted.
//	if the variant has state outputs: states tokens, one per state.
//	if the variant has transition outputs: states*inputs tokens, row-major.
func Load(path string) (*FSM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFileFormat, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses the `.fsm` format from r. See Load for the grammar.
func Decode(r io.Reader) (*FSM, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	toks := newTokenizer(sc)

	variantTok, err := toks.nextInt()
	if err != nil {
		return nil, err
	}
	if variantTok < 0 || variantTok > 3 {
		return nil, fmt.Errorf("%w: unknown variant %d", ErrBadFileFormat, variantTok)
	}
	nStates, err := toks.nextInt()
	if err != nil {
		return nil, err
	}
	nInputs, err := toks.nextInt()
	if err != nil {
		return nil, err
	}
	nOutputs, err := toks.nextInt()
	if err != nil {
		return nil, err
	}

	out, err := NewFSM(Variant(variantTok), nStates, nInputs, nOutputs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFileFormat, err)
	}

	for s := 0; s < nStates; s++ {
		for a := 0; a < nInputs; a++ {
			v, err := toks.nextInt()
			if err != nil {
				return nil, err
			}
			target := State(v)
			if v == -1 {
				target = NullState
			} else if target < 0 || int(target) >= nStates {
				return nil, fmt.Errorf("%w: transition target %d out of range", ErrBadFileFormat, v)
			}
			out.delta[s][a] = target
		}
	}

	if out.IsOutputState() {
		for s := 0; s < nStates; s++ {
			v, err := toks.nextInt()
			if err != nil {
				return nil, err
			}
			if v < 0 || v >= nOutputs {
				return nil, fmt.Errorf("%w: state output %d out of range", ErrBadFileFormat, v)
			}
			out.outState[s] = Output(v)
		}
	}

	if out.IsOutputTransition() {
		for s := 0; s < nStates; s++ {
			for a := 0; a < nInputs; a++ {
				v, err := toks.nextInt()
				if err != nil {
					return nil, err
				}
				if v < 0 || v >= nOutputs {
					return nil, fmt.Errorf("%w: transition output %d out of range", ErrBadFileFormat, v)
				}
				out.outTrans[s][a] = Output(v)
			}
		}
	}

	return out, nil
}

// tokenizer pulls whitespace-separated integer tokens across line
// boundaries, matching the original ASCII table's layout.
type tokenizer struct {
	sc     *bufio.Scanner
	fields []string
}

func newTokenizer(sc *bufio.Scanner) *tokenizer {
	sc.Split(bufio.ScanWords)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) nextInt() (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrBadFileFormat, err)
		}
		return 0, fmt.Errorf("%w: unexpected end of input", ErrBadFileFormat)
	}
	tok := t.sc.Text()
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: not an integer: %q", ErrBadFileFormat, tok)
	}
	return v, nil
}

// Save writes f to path in the `.fsm` format. Any existing file is
// overwritten.
func (f *FSM) Save(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadFileFormat, err)
	}
	defer out.Close()
	return f.Encode(out)
}

// Encode writes f's `.fsm` representation to w.
func (f *FSM) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d %d %d\n", int(f.variant), f.nStates, f.nInputs, f.nOutputs)
	for s := 0; s < f.nStates; s++ {
		row := make([]string, f.nInputs)
		for a := 0; a < f.nInputs; a++ {
			if f.delta[s][a] == NullState {
				row[a] = "-1"
			} else {
				row[a] = strconv.Itoa(int(f.delta[s][a]))
			}
		}
		fmt.Fprintln(bw, strings.Join(row, " "))
	}
	if f.IsOutputState() {
		row := make([]string, f.nStates)
		for s := 0; s < f.nStates; s++ {
			row[s] = strconv.Itoa(int(f.outState[s]))
		}
		fmt.Fprintln(bw, strings.Join(row, " "))
	}
	if f.IsOutputTransition() {
		for s := 0; s < f.nStates; s++ {
			row := make([]string, f.nInputs)
			for a := 0; a < f.nInputs; a++ {
				row[a] = strconv.Itoa(int(f.outTrans[s][a]))
			}
			fmt.Fprintln(bw, strings.Join(row, " "))
		}
	}
	return bw.Flush()
}
