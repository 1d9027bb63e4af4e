package load

// DefaultMaxDepth bounds builder recursion when WithMaxDepth is not
// given. Real configurations nest a handful of levels; the ceiling only
// guards against adversarial input.
const DefaultMaxDepth = 128

type loadOpts struct {
	maxDepth int
}

// Option configures a load call.
type Option func(*loadOpts)

// WithMaxDepth sets the maximum structural nesting depth accepted
// before a load fails with ErrDepth.
func WithMaxDepth(n int) Option {
	return func(o *loadOpts) {
		o.maxDepth = n
	}
}
