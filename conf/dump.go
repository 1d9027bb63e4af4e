package conf

import (
	"fmt"
	"io"
)

// Dump writes one line per node below n in document order: "path = value"
// for nodes carrying a value, "path" alone for containers. The output is
// stable for identical trees, so it doubles as a canonical form for
// comparing configurations.
func (n *Node) Dump(w io.Writer) error {
	var err error
	n.Walk(func(node *Node) {
		if err != nil || node == n {
			return
		}
		if node.Value != "" || len(node.Children) == 0 {
			_, err = fmt.Fprintf(w, "%s = %s\n", node.Path(), node.Value)
			return
		}
		_, err = fmt.Fprintf(w, "%s\n", node.Path())
	})
	return err
}
