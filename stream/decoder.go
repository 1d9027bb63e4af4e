package stream

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// Decoder provides structural event-based decoding of a YAML
// configuration document. The whole input is parsed up front, so any
// syntax error is reported by NewDecoder; ReadEvent then replays the
// document as an ordered event stream.
type Decoder struct {
	opts   *decodeOpts
	events []Event
	next   int
}

// NewDecoder creates a Decoder reading from r. The input is consumed in
// full. A %YAML version directive ahead of the document-start marker is
// recognized and attached to the first DocumentStart event.
func NewDecoder(r io.Reader, opts ...DecodeOption) (*Decoder, error) {
	dOpts := &decodeOpts{}
	for _, opt := range opts {
		opt(dOpts)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", dOpts.srcName(), err)
	}

	d := &Decoder{opts: dOpts}
	ver, stripped, err := scanDirectives(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSyntax, dOpts.srcName(), err)
	}
	file, err := parser.ParseBytes(stripped, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSyntax, dOpts.srcName(), err)
	}
	for i, doc := range file.Docs {
		ev := Event{Type: EventDocumentStart}
		if i == 0 {
			ev.Version = ver
		}
		d.emit(ev)
		if doc.Body != nil {
			if err := d.walk(doc.Body); err != nil {
				return nil, err
			}
		}
		d.emit(Event{Type: EventDocumentEnd})
	}
	d.emit(Event{Type: EventStreamEnd})
	return d, nil
}

// ReadEvent returns the next structural event, or io.EOF once StreamEnd
// has been consumed.
func (d *Decoder) ReadEvent() (*Event, error) {
	if d.next >= len(d.events) {
		return nil, io.EOF
	}
	ev := &d.events[d.next]
	d.next++
	return ev, nil
}

func (d *Decoder) emit(ev Event) {
	d.events = append(d.events, ev)
}

func (d *Decoder) walk(node ast.Node) error {
	if node == nil {
		return nil
	}
	switch n := node.(type) {
	case *ast.MappingNode:
		d.emit(Event{Type: EventMappingStart})
		for _, kv := range n.Values {
			if err := d.walkPair(kv); err != nil {
				return err
			}
		}
		d.emit(Event{Type: EventMappingEnd})
	case *ast.MappingValueNode:
		// A single-pair mapping parses as a bare key/value pair.
		d.emit(Event{Type: EventMappingStart})
		if err := d.walkPair(n); err != nil {
			return err
		}
		d.emit(Event{Type: EventMappingEnd})
	case *ast.SequenceNode:
		d.emit(Event{Type: EventSequenceStart})
		for _, v := range n.Values {
			if err := d.walk(v); err != nil {
				return err
			}
		}
		d.emit(Event{Type: EventSequenceEnd})
	case *ast.NullNode:
		d.emit(Event{Type: EventScalar})
	case *ast.StringNode, *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode,
		*ast.InfinityNode, *ast.NanNode, *ast.MergeKeyNode:
		d.emit(Event{Type: EventScalar, Value: node.GetToken().Value})
	case *ast.LiteralNode:
		d.emit(Event{Type: EventScalar, Value: n.Value.Value})
	case *ast.TagNode:
		return d.walk(n.Value)
	case *ast.AnchorNode:
		return d.walk(n.Value)
	case *ast.AliasNode:
		// Aliases are out of scope and produce no events.
	case *ast.MappingKeyNode:
		return d.walk(n.Value)
	default:
		return fmt.Errorf("%w: %s: unsupported YAML construct %T",
			ErrSyntax, d.opts.srcName(), node)
	}
	return nil
}

func (d *Decoder) walkPair(kv *ast.MappingValueNode) error {
	if err := d.walk(kv.Key); err != nil {
		return err
	}
	return d.walk(kv.Value)
}

func (o *decodeOpts) srcName() string {
	if o.name == "" {
		return "<input>"
	}
	return o.name
}

// scanDirectives extracts a leading %YAML directive, if any, and blanks
// all directive lines so the YAML parser only sees structure. Scanning
// stops at the document-start marker or the first content line; content
// following directives without a "---" marker is an error, as is a
// repeated or malformed %YAML directive.
func scanDirectives(data []byte) (*Version, []byte, error) {
	out := bytes.Clone(data)
	var ver *Version
	for start := 0; start < len(out); {
		end := bytes.IndexByte(out[start:], '\n')
		if end < 0 {
			end = len(out)
		} else {
			end += start
		}
		line := bytes.TrimSpace(out[start:end])
		switch {
		case len(line) == 0 || line[0] == '#':
			// blank lines and comments may precede directives
		case bytes.HasPrefix(line, []byte("---")):
			return ver, out, nil
		case line[0] == '%':
			if bytes.HasPrefix(line, []byte("%YAML")) {
				if ver != nil {
					return nil, nil, fmt.Errorf("repeated %%YAML directive")
				}
				v, err := parseVersion(string(bytes.TrimSpace(line[len("%YAML"):])))
				if err != nil {
					return nil, nil, err
				}
				ver = v
			}
			// %TAG and unknown directives are blanked and ignored
			for i := start; i < end; i++ {
				out[i] = ' '
			}
		default:
			if ver != nil {
				return nil, nil, fmt.Errorf("expected document start marker \"---\" after directives")
			}
			return nil, out, nil
		}
		start = end + 1
	}
	if ver != nil {
		return nil, nil, fmt.Errorf("expected document start marker \"---\" after directives")
	}
	return nil, out, nil
}

func parseVersion(s string) (*Version, error) {
	majorStr, minorStr, ok := strings.Cut(s, ".")
	if !ok {
		return nil, fmt.Errorf("malformed %%YAML directive %q", s)
	}
	major, err := strconv.Atoi(majorStr)
	if err != nil {
		return nil, fmt.Errorf("malformed %%YAML directive %q", s)
	}
	minor, err := strconv.Atoi(minorStr)
	if err != nil {
		return nil, fmt.Errorf("malformed %%YAML directive %q", s)
	}
	return &Version{Major: major, Minor: minor}, nil
}
