package testmethods

// ConfirmationPolicy controls how SPY/SPYH pick the separator appended when
// confirming a state already reached by the transition cover (§4.G).
type ConfirmationPolicy int

const (
	// PolicyFull appends the full harmonized identifier set for the end
	// state (the same separator strength as the HSI method).
	PolicyFull ConfirmationPolicy = iota
	// PolicyVerifyingSet appends the end state's single SVS in place of its
	// harmonized set whenever one exists, falling back to PolicyFull
	// behaviour otherwise. Typically shorter per-application but relies on
	// an SVS existing for every state that needs confirming.
	PolicyVerifyingSet
)

// Options configures SPY and SPYH.
type Options struct {
	ConfirmationPolicy ConfirmationPolicy
}

// Option mutates an Options value.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: PolicyFull.
func DefaultOptions() Options {
	return Options{ConfirmationPolicy: PolicyFull}
}

// WithConfirmationPolicy overrides the confirmation policy.
func WithConfirmationPolicy(p ConfirmationPolicy) Option {
	return func(o *Options) { o.ConfirmationPolicy = p }
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
