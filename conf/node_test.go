package conf

import (
	"bytes"
	"errors"
	"testing"
)

func TestLookupAndRemove(t *testing.T) {
	root := New("")
	a := New("a")
	b := New("b")
	root.Append(a)
	root.Append(b)

	if got := root.Lookup("a"); got != a {
		t.Errorf("expected a, got %v", got)
	}
	if got := root.Lookup("missing"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
	if !root.Remove(a) {
		t.Error("expected Remove to report success")
	}
	if root.Lookup("a") != nil {
		t.Error("a should be detached")
	}
	if a.Parent != nil {
		t.Error("removed node should have no parent")
	}
	if root.Remove(a) {
		t.Error("removing a detached node should report failure")
	}
	if len(root.Children) != 1 || root.Children[0] != b {
		t.Errorf("expected only b to remain, got %v", root.Children)
	}
}

func TestGetDottedPath(t *testing.T) {
	root := New("")
	if err := root.Set("logging.output.0.interface", "console"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	node := root.Get("logging.output.0.interface")
	if node == nil || node.Value != "console" {
		t.Fatalf("expected console, got %v", node)
	}
	if got := node.Path(); got != "logging.output.0.interface" {
		t.Errorf("expected path to round-trip, got %q", got)
	}
	if root.Get("logging.missing.x") != nil {
		t.Error("expected nil for missing path")
	}
}

func TestSetFinal(t *testing.T) {
	root := New("")
	if err := root.SetFinal("run-as.user", "suri"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := root.Set("run-as.user", "root")
	if !errors.Is(err, ErrFinal) {
		t.Fatalf("expected ErrFinal, got %v", err)
	}
	if got := root.Get("run-as.user"); got.Value != "suri" {
		t.Errorf("expected suri, got %q", got.Value)
	}

	// SetFinal itself may replace a final value.
	if err := root.SetFinal("run-as.user", "nobody"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := root.Get("run-as.user"); got.Value != "nobody" {
		t.Errorf("expected nobody, got %q", got.Value)
	}
}

func TestValueHelpers(t *testing.T) {
	root := New("")
	root.Set("threads", "12")
	root.Set("enabled", "yes")
	root.Set("disabled", "off")
	root.Set("name", "eve")

	v, err := root.Get("threads").Int()
	if err != nil || v != 12 {
		t.Errorf("expected 12, got %d (%v)", v, err)
	}
	if _, err := root.Get("name").Int(); !errors.Is(err, ErrValue) {
		t.Errorf("expected ErrValue, got %v", err)
	}
	if !root.Get("enabled").Bool() {
		t.Error("yes should be truthy")
	}
	if root.Get("disabled").Bool() {
		t.Error("off should be falsy")
	}
}

func TestDump(t *testing.T) {
	root := New("")
	root.Set("logging.level", "info")
	root.Set("rule-files.0", "netbios.rules")
	root.Set("rule-files.1", "x11.rules")

	var buf bytes.Buffer
	if err := root.Dump(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `logging
logging.level = info
rule-files
rule-files.0 = netbios.rules
rule-files.1 = x11.rules
`
	if buf.String() != want {
		t.Errorf("dump mismatch:\nwant:\n%s\ngot:\n%s", want, buf.String())
	}
}
