// Package conf provides the generic configuration node tree.
//
// # Overview
//
// A configuration is represented as an ordered n-ary tree of named nodes.
// Leaf nodes carry a scalar string value; container nodes carry ordered
// children. The tree is generic: conf attaches no meaning to names or
// values, it only stores and retrieves them for downstream consumers.
//
// The root node is created by the host with New and populated by one or
// more load passes (see the load package). Children derived from YAML
// sequences are named by their zero-based position ("0", "1", ...), so a
// dotted path can address any node in the tree:
//
//	node := root.Get("logging.output.0.interface")
//
// # Override Policy
//
// Every node carries an AllowOverride flag. When a later load (or Set)
// produces a sibling with the same name, the earlier node and its whole
// subtree are discarded first if AllowOverride permits; otherwise the
// earlier definition is kept. SetFinal pins a value against later loads.
//
// Nodes are not safe for concurrent use; callers must serialize loads and
// reads against a shared tree themselves.
package conf
