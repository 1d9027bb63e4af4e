// Package load builds configuration node trees from YAML input.
//
// # Overview
//
// load drives the stream package's event decoder against a
// caller-supplied root node (see the conf package) in a single blocking
// pass:
//
//	root := conf.New("")
//	if err := load.File(root, "app.yaml"); err != nil {
//	    // the tree may hold a partial load; discard it
//	}
//
// Input must begin with a %YAML 1.1 directive and a document-start
// marker; anything else fails before any node is created.
//
// # Tree Building
//
// The builder is a small recursive state machine. Mapping scopes
// alternate between expecting a key and expecting a value; sequence
// scopes create positionally named children ("0", "1", ...) with no
// alternation. A mapping nested in a sequence becomes an indexed
// container child that borrows its first key as a display value.
//
// Duplicate keys follow override policy: if the earlier node allows
// override, it and its subtree are removed before the new node is
// committed; a final node (conf.SetFinal) keeps its first definition.
// Loading several files into one root therefore gives last-wins
// semantics for overridable keys across loads.
//
// # Failure
//
// Errors wrap one of the package sentinels (ErrOpen, ErrInit,
// ErrVersion, ErrSyntax, ErrDepth) and unwind every recursion level
// immediately. There is no rollback: a failed load leaves the tree in
// an untrusted state.
package load
