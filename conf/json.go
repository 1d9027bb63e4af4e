package conf

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON renders the tree below n as JSON. Containers whose
// children are named "0", "1", ... in order render as arrays, other
// containers render as objects preserving child order, and leaves render
// as their scalar value.
func (n *Node) MarshalJSON() ([]byte, error) {
	if len(n.Children) == 0 {
		return json.Marshal(n.Value)
	}
	var buf bytes.Buffer
	if n.seqShaped() {
		buf.WriteByte('[')
		for i, child := range n.Children {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := child.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(d)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	}
	buf.WriteByte('{')
	for i, child := range n.Children {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(child.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		d, err := child.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(d)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
