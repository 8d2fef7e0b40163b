package main

import (
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/chrisuehlinger/vibetext/html"
	"github.com/chrisuehlinger/vibetext/script"
	"github.com/chrisuehlinger/vibetext/text"
	"github.com/chrisuehlinger/vibetext/ui"
)

var cmdEdit = &cli.Command{
	Name:      "edit",
	Usage:     "open the editor window",
	ArgsUsage: `[<file or url>]`,
	Action:    runEdit,
}

func runEdit(cctx *cli.Context) error {
	cfg, err := loadConfig(cctx)
	if err != nil {
		return err
	}

	var doc *text.Document
	if path := cctx.Args().First(); path != "" {
		if doc, err = readDocument(cctx.Context, path); err != nil {
			return err
		}
	} else if doc, err = html.ImportString(sampleDocument); err != nil {
		return err
	}

	log := slog.Default()
	engine, err := script.NewEngine(append(cfg.ScriptOptions(), script.WithLogger(log))...)
	if err != nil {
		return err
	}

	ui.NewEditorUI(doc, cfg, engine, log).Run()
	return nil
}
