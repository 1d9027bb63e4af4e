package main

import (
	"fmt"
	"io"
	"os"

	"github.com/conftree/conftree/conf"
	"github.com/conftree/conftree/load"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='force colorized output'"`
	MaxDepth int  `cli:"name=max-depth desc='maximum nesting depth accepted when loading'"`

	Main *cli.Command
}

func (cfg *MainConfig) loadOpts() []load.Option {
	if cfg.MaxDepth > 0 {
		return []load.Option{load.WithMaxDepth(cfg.MaxDepth)}
	}
	return nil
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// loadTree loads the given files, in order, into a fresh root. Later
// files override earlier ones per node override policy. "-" reads from
// cc.In.
func loadTree(cfg *MainConfig, cc *cli.Context, files []string) (*conf.Node, error) {
	root := conf.New("")
	for _, file := range files {
		if file == "-" {
			data, err := io.ReadAll(cc.In)
			if err != nil {
				return nil, fmt.Errorf("error reading stdin: %w", err)
			}
			if err := load.Data(root, data, cfg.loadOpts()...); err != nil {
				return nil, fmt.Errorf("error loading stdin: %w", err)
			}
			continue
		}
		if err := load.File(root, file, cfg.loadOpts()...); err != nil {
			return nil, fmt.Errorf("error loading %s: %w", file, err)
		}
	}
	return root, nil
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type FindConfig struct {
	*MainConfig
	Expr string `cli:"name=e desc='boolean expression over name, value, path, depth'"`

	Find *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Merge *cli.Command
}
