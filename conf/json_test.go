package conf

import "testing"

func TestMarshalJSON(t *testing.T) {
	jsonTests := []struct {
		name string
		make func() *Node
		want string
	}{
		{
			name: "leaf",
			make: func() *Node {
				n := New("x")
				n.Value = "v"
				return n
			},
			want: `"v"`,
		},
		{
			name: "object preserves order",
			make: func() *Node {
				n := New("")
				n.Set("b", "2")
				n.Set("a", "1")
				return n
			},
			want: `{"b":"2","a":"1"}`,
		},
		{
			name: "sequence-shaped children render as array",
			make: func() *Node {
				n := New("")
				n.Set("files.0", "a.rules")
				n.Set("files.1", "b.rules")
				return n
			},
			want: `{"files":["a.rules","b.rules"]}`,
		},
		{
			name: "gapped index names stay an object",
			make: func() *Node {
				n := New("")
				n.Set("files.0", "a.rules")
				n.Set("files.2", "b.rules")
				return n
			},
			want: `{"files":{"0":"a.rules","2":"b.rules"}}`,
		},
	}
	for _, tc := range jsonTests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := tc.make().MarshalJSON()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(d) != tc.want {
				t.Errorf("expected %s, got %s", tc.want, d)
			}
		})
	}
}
