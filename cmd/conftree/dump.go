package main

import (
	"fmt"
	"io"

	"github.com/conftree/conftree/conf"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	return dumpFiles(cfg.MainConfig, cc, args)
}

func dumpFiles(cfg *MainConfig, cc *cli.Context, files []string) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	root, err := loadTree(cfg, cc, files)
	if err != nil {
		return err
	}
	return writeTree(cfg, cc.Out, root)
}

func writeTree(cfg *MainConfig, w io.Writer, root *conf.Node) error {
	if !cfg.useColor(w) {
		return root.Dump(w)
	}
	pathCol := color.RGB(196, 96, 16).SprintfFunc()
	valueCol := color.RGB(128, 216, 236).SprintfFunc()
	var err error
	root.Walk(func(node *conf.Node) {
		if err != nil || node == root {
			return
		}
		if node.Value != "" || len(node.Children) == 0 {
			_, err = fmt.Fprintf(w, "%s = %s\n", pathCol("%s", node.Path()), valueCol("%s", node.Value))
			return
		}
		_, err = fmt.Fprintf(w, "%s\n", pathCol("%s", node.Path()))
	})
	return err
}
