package load

import "errors"

var (
	// ErrOpen indicates the configuration file could not be opened or
	// read.
	ErrOpen = errors.New("could not open configuration file")

	// ErrInit indicates the event source could not be initialized, for
	// example because the supplied reader failed.
	ErrInit = errors.New("could not initialize configuration reader")

	// ErrVersion indicates a missing or mismatched %YAML version
	// directive.
	ErrVersion = errors.New("invalid configuration version")

	// ErrSyntax indicates malformed configuration input; the wrapped
	// text carries the parser's diagnostic.
	ErrSyntax = errors.New("malformed configuration")

	// ErrDepth indicates input nested deeper than the configured
	// ceiling.
	ErrDepth = errors.New("configuration nested too deeply")
)
