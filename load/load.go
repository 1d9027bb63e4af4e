package load

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/conftree/conftree/conf"
	"github.com/conftree/conftree/debug"
	"github.com/conftree/conftree/stream"
)

// File loads the YAML configuration at path into root. On failure the
// tree may already contain nodes committed before the error; callers
// should discard it rather than trust a partial load.
func File(root *conf.Node, path string, opts ...Option) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrOpen, path, err)
	}
	defer f.Close()
	return fromReader(root, f, path, opts)
}

// Data loads an in-memory YAML configuration into root. It is otherwise
// identical to File.
func Data(root *conf.Node, data []byte, opts ...Option) error {
	return fromReader(root, bytes.NewReader(data), "", opts)
}

func fromReader(root *conf.Node, r io.Reader, name string, opts []Option) error {
	o := &loadOpts{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(o)
	}

	var sOpts []stream.DecodeOption
	if name != "" {
		sOpts = append(sOpts, stream.WithName(name))
	}
	dec, err := stream.NewDecoder(r, sOpts...)
	if err != nil {
		if errors.Is(err, stream.ErrSyntax) {
			return fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		return fmt.Errorf("%w: %v", ErrInit, err)
	}

	b := &builder{src: dec, maxDepth: o.maxDepth}
	if err := b.build(root, false, 0); err != nil {
		return err
	}
	if debug.Build() {
		debug.Logf("loaded %s: %s", name, debug.JSON(root))
	}
	return nil
}
