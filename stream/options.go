package stream

type decodeOpts struct {
	name string
}

// DecodeOption configures a Decoder.
type DecodeOption func(*decodeOpts)

// WithName sets a source name (typically a file path) used to prefix
// syntax diagnostics.
func WithName(name string) DecodeOption {
	return func(o *decodeOpts) {
		o.name = name
	}
}
