package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted node path", cli.ErrUsage)
	}
	path := args[0]
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	root, err := loadTree(cfg.MainConfig, cc, files)
	if err != nil {
		return err
	}
	node := root.Get(path)
	if node == nil {
		return fmt.Errorf("no node at %q", path)
	}
	if len(node.Children) == 0 {
		_, err = fmt.Fprintln(cc.Out, node.Value)
		return err
	}
	return writeTree(cfg.MainConfig, cc.Out, node)
}
