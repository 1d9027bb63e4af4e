package conf

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is a single named node in a configuration tree. A node either
// carries a scalar Value (leaf) or ordered Children (container); the two
// shapes are mutually exclusive, except that a sequence-element container
// may borrow the value of its first scalar key for display purposes.
type Node struct {
	Name     string
	Value    string
	Parent   *Node
	Children []*Node

	// SeqElement marks a node created while traversing a sequence. It
	// records provenance; a SeqElement container may carry a display
	// value in addition to its children.
	SeqElement bool

	// AllowOverride controls whether a later load may replace this node.
	AllowOverride bool
}

// New creates a node with the given name. Nodes allow override by
// default; use SetFinal to pin a value.
func New(name string) *Node {
	return &Node{
		Name:          name,
		AllowOverride: true,
	}
}

// Append adds child to the end of n's children and records n as its
// parent. Sibling name uniqueness is the caller's concern (see the load
// package's override handling).
func (n *Node) Append(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Lookup returns the direct child of n with the given name, or nil.
func (n *Node) Lookup(name string) *Node {
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// Remove detaches child (and its entire subtree) from n. It reports
// whether child was a direct child of n.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return true
		}
	}
	return false
}

// Get returns the node at the dotted path below n, or nil if any
// segment is missing. Sequence elements are addressed by index:
//
//	root.Get("logging.output.0.interface")
func (n *Node) Get(path string) *Node {
	node := n
	for _, name := range strings.Split(path, ".") {
		node = node.Lookup(name)
		if node == nil {
			return nil
		}
	}
	return node
}

// Set assigns a scalar value at the dotted path below n, creating
// intermediate container nodes as needed. It fails with ErrFinal if the
// addressed node exists and forbids override.
func (n *Node) Set(path, value string) error {
	return n.set(path, value, false)
}

// SetFinal is Set, but additionally pins the node against later
// overrides (from Set or from subsequent loads).
func (n *Node) SetFinal(path, value string) error {
	return n.set(path, value, true)
}

func (n *Node) set(path, value string, final bool) error {
	names := strings.Split(path, ".")
	node := n
	for _, name := range names[:len(names)-1] {
		next := node.Lookup(name)
		if next == nil {
			next = New(name)
			node.Append(next)
		}
		node = next
	}
	name := names[len(names)-1]
	leaf := node.Lookup(name)
	if leaf == nil {
		leaf = New(name)
		node.Append(leaf)
	} else if !leaf.AllowOverride && !final {
		return fmt.Errorf("%w: %q", ErrFinal, leaf.Path())
	}
	leaf.Value = value
	if final {
		leaf.AllowOverride = false
	}
	return nil
}

// Path returns the dotted path of n from its root. Unnamed ancestors
// (typically the root itself) are omitted.
func (n *Node) Path() string {
	var names []string
	for node := n; node != nil; node = node.Parent {
		if node.Name == "" {
			continue
		}
		names = append(names, node.Name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, ".")
}

// Walk visits n and every node below it in document order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Depth returns the number of ancestors of n.
func (n *Node) Depth() int {
	d := 0
	for node := n.Parent; node != nil; node = node.Parent {
		d++
	}
	return d
}

// Int interprets n's value as a base-10 or prefixed integer.
func (n *Node) Int() (int64, error) {
	v, err := strconv.ParseInt(n.Value, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %q is not an integer", ErrValue, n.Path(), n.Value)
	}
	return v, nil
}

// Bool reports whether n's value is one of the YAML 1.1 truthy
// spellings: "1", "yes", "true" or "on" (case insensitive).
func (n *Node) Bool() bool {
	switch strings.ToLower(n.Value) {
	case "1", "yes", "true", "on":
		return true
	}
	return false
}

// seqShaped reports whether n's children look like a loaded sequence:
// non-empty, gapless, zero-based index names in order.
func (n *Node) seqShaped() bool {
	if len(n.Children) == 0 {
		return false
	}
	for i, child := range n.Children {
		if child.Name != strconv.Itoa(i) {
			return false
		}
	}
	return true
}
