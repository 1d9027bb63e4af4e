package stream

import "errors"

var (
	// ErrSyntax wraps any malformed-input diagnostic from the
	// underlying YAML parser or the directive scanner.
	ErrSyntax = errors.New("yaml syntax error")
)
