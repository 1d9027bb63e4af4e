package main

import (
	"fmt"

	"github.com/conftree/conftree/conf"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: find requires an -e expression", cli.ErrUsage)
	}
	files := args
	if len(files) == 0 {
		files = []string{"-"}
	}
	root, err := loadTree(cfg.MainConfig, cc, files)
	if err != nil {
		return err
	}

	prg, err := expr.Compile(cfg.Expr, expr.Env(nodeEnv(nil)), expr.AsBool())
	if err != nil {
		return fmt.Errorf("bad expression %q: %w", cfg.Expr, err)
	}
	var runErr error
	root.Walk(func(node *conf.Node) {
		if runErr != nil || node == root {
			return
		}
		res, err := vm.Run(prg, nodeEnv(node))
		if err != nil {
			runErr = fmt.Errorf("error evaluating %q at %s: %w", cfg.Expr, node.Path(), err)
			return
		}
		if matched, ok := res.(bool); ok && matched {
			fmt.Fprintf(cc.Out, "%s = %s\n", node.Path(), node.Value)
		}
	})
	return runErr
}

func nodeEnv(n *conf.Node) map[string]any {
	if n == nil {
		return map[string]any{"name": "", "value": "", "path": "", "depth": 0}
	}
	return map[string]any{
		"name":  n.Name,
		"value": n.Value,
		"path":  n.Path(),
		"depth": n.Depth(),
	}
}
