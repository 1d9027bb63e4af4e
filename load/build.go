package load

import (
	"fmt"
	"strconv"

	"github.com/conftree/conftree/conf"
	"github.com/conftree/conftree/debug"
	"github.com/conftree/conftree/stream"
)

// eventSource is the builder's view of the stream decoder.
type eventSource interface {
	ReadEvent() (*stream.Event, error)
}

// Intra-scope builder states. In mapping scopes scalars alternate
// between key and value; sequence scopes have no alternation.
type buildState int

const (
	expectKey buildState = iota
	expectValue
)

type builder struct {
	src      eventSource
	maxDepth int
}

// build consumes events into parent until the scope it was invoked for
// ends. In a mapping scope (inSeq false) the frame ends at mapping-end
// or stream-end; a sequence scope ends at sequence-end. Any failure
// unwinds through every active frame; nodes already committed stay in
// the tree.
func (b *builder) build(parent *conf.Node, inSeq bool, depth int) error {
	if depth >= b.maxDepth {
		return fmt.Errorf("%w: depth %d exceeds limit %d", ErrDepth, depth, b.maxDepth)
	}

	// node is the scope's current node: the most recently created or
	// selected key child. It starts out as the scope itself so that an
	// immediately-nested anonymous mapping merges into this scope.
	node := parent
	state := expectKey
	seqIdx := 0

	for {
		ev, err := b.src.ReadEvent()
		if err != nil {
			return fmt.Errorf("%w: unexpected end of event stream: %v", ErrSyntax, err)
		}
		if debug.Events() {
			debug.Logf("event %s %q inseq=%v state=%d depth=%d",
				ev.Type, ev.Value, inSeq, state, depth)
		}

		switch ev.Type {
		case stream.EventDocumentStart:
			if err := checkVersion(ev.Version); err != nil {
				return err
			}

		case stream.EventScalar:
			if inSeq {
				elt := conf.New(strconv.Itoa(seqIdx))
				seqIdx++
				elt.Value = ev.Value
				parent.Append(elt)
				break
			}
			if state == expectKey {
				name := ev.Value
				if prev := parent.Lookup(name); prev != nil {
					if prev.AllowOverride {
						parent.Remove(prev)
					} else {
						// Keep the existing child. The current node is
						// not repointed, so the upcoming value lands on
						// the previously current node.
						state = expectValue
						break
					}
				}
				if parent.SeqElement && parent.Value == "" {
					// A sequence-element mapping borrows its first key
					// as its own display value.
					parent.Value = name
				}
				node = conf.New(name)
				parent.Append(node)
				state = expectValue
			} else {
				node.Value = ev.Value
				state = expectKey
			}

		case stream.EventSequenceStart:
			if err := b.build(node, true, depth+1); err != nil {
				return err
			}
			state = expectKey

		case stream.EventSequenceEnd:
			return nil

		case stream.EventMappingStart:
			if inSeq {
				elt := conf.New(strconv.Itoa(seqIdx))
				seqIdx++
				elt.SeqElement = true
				parent.Append(elt)
				if err := b.build(elt, false, depth+1); err != nil {
					return err
				}
			} else {
				if err := b.build(node, false, depth+1); err != nil {
					return err
				}
			}
			state = expectKey

		case stream.EventMappingEnd:
			return nil

		case stream.EventStreamEnd:
			return nil

		case stream.EventDocumentEnd:
			// nothing to do
		}
	}
}
