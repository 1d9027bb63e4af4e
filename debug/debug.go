// Package debug holds env-var-gated debug switches for conftree.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Events bool
	Build  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Events = boolEnv("CONFTREE_DEBUG_EVENTS")
	d.Build = boolEnv("CONFTREE_DEBUG_BUILD")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Events reports whether the tree builder traces each consumed event.
func Events() bool {
	return d.Events
}

// Build reports whether load calls log the resulting tree.
func Build() bool {
	return d.Build
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func JSON(v any) string {
	d, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}
