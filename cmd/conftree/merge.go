package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

// merge combines two configuration files with RFC 7386 merge-patch
// semantics on their JSON renderings. Unlike loading both files into one
// tree, this ignores per-node override policy: the overlay always wins.
func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: merge requires a base and an overlay file", cli.ErrUsage)
	}

	var docs [2][]byte
	for i, file := range args {
		root, err := loadTree(cfg.MainConfig, cc, []string{file})
		if err != nil {
			return err
		}
		d, err := json.Marshal(root)
		if err != nil {
			return fmt.Errorf("error rendering %s: %w", file, err)
		}
		docs[i] = d
	}

	merged, err := jsonpatch.MergePatch(docs[0], docs[1])
	if err != nil {
		return fmt.Errorf("error merging: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, merged, "", "  "); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, out.String())
	return err
}
