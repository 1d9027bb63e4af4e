package main

import (
	"bytes"
	"fmt"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}

	var dumps [2]string
	for i, file := range args {
		root, err := loadTree(cfg.MainConfig, cc, []string{file})
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := root.Dump(&buf); err != nil {
			return err
		}
		dumps[i] = buf.String()
	}

	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(dumps[0], dumps[1], true)
	if cfg.useColor(cc.Out) {
		_, err = fmt.Fprint(cc.Out, diffCfg.DiffPrettyText(diffs))
		return err
	}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			_, err = fmt.Fprint(cc.Out, d.Text)
		case diffpatch.DiffInsert:
			_, err = fmt.Fprintf(cc.Out, "{+%s+}", d.Text)
		case diffpatch.DiffDelete:
			_, err = fmt.Fprintf(cc.Out, "{-%s-}", d.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
