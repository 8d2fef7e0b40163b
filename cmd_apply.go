package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/chrisuehlinger/vibetext/config"
	"github.com/chrisuehlinger/vibetext/richtext"
	"github.com/chrisuehlinger/vibetext/script"
	"github.com/chrisuehlinger/vibetext/text"
)

var cmdApply = &cli.Command{
	Name:  "apply",
	Usage: "apply styles to a character range of a document",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "in",
			Usage: "input document (HTML, or .txt for plain text); - for stdin",
			Value: "-",
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "output HTML file; - for stdout",
			Value: "-",
		},
		&cli.IntFlag{
			Name:  "start",
			Usage: "first selected character",
		},
		&cli.IntFlag{
			Name:  "end",
			Usage: "end of the selection, exclusive; defaults to the end of the document",
			Value: -1,
		},
		&cli.StringSliceFlag{
			Name:    "style",
			Aliases: []string{"s"},
			Usage:   "style mutation, e.g. bold, color=red, size=14 (repeatable)",
		},
		&cli.StringFlag{
			Name:  "preset",
			Usage: "named style preset from the configuration",
		},
		&cli.StringFlag{
			Name:  "script",
			Usage: "JavaScript file run against every styled span",
		},
		&cli.StringFlag{
			Name:  "align",
			Usage: "set paragraph alignment (left, center, right, justify)",
		},
		&cli.BoolFlag{
			Name:  "dump",
			Usage: "print the resulting tree instead of HTML",
		},
	},
	Action: runApply,
}

// applyRequest is a headless edit of one document.
type applyRequest struct {
	Start, End int // End < 0 means the end of the document
	Styles     []string
	Preset     string
	Script     string // script source
	Align      string
}

func runApply(cctx *cli.Context) error {
	cfg, err := loadConfig(cctx)
	if err != nil {
		return err
	}

	req := applyRequest{
		Start:  cctx.Int("start"),
		End:    cctx.Int("end"),
		Styles: cctx.StringSlice("style"),
		Preset: cctx.String("preset"),
		Align:  cctx.String("align"),
	}
	if path := cctx.String("script"); path != "" {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading script: %w", err)
		}
		req.Script = string(src)
	}

	doc, err := readDocument(cctx.Context, cctx.String("in"))
	if err != nil {
		return err
	}
	if err := applyDocument(doc, req, cfg, slog.Default()); err != nil {
		return err
	}

	if cctx.Bool("dump") {
		return text.Dump(os.Stdout, doc.AsNode())
	}
	return writeDocument(cctx.String("out"), doc)
}

// applyDocument selects the requested range of doc and applies the
// requested styles, preset, script and alignment in that order.
func applyDocument(doc *text.Document, req applyRequest, cfg *config.Config, log *slog.Logger) error {
	var as []richtext.StyleApplicator
	if len(req.Styles) > 0 {
		a, err := richtext.ParseMutations(req.Styles)
		if err != nil {
			return err
		}
		as = append(as, a)
	}
	if req.Preset != "" {
		a, err := cfg.Preset(req.Preset)
		if err != nil {
			return err
		}
		as = append(as, a)
	}
	var sm *script.Mutation
	if req.Script != "" {
		engine, err := script.NewEngine(append(cfg.ScriptOptions(), script.WithLogger(log))...)
		if err != nil {
			return err
		}
		if sm, err = engine.Compile(req.Script); err != nil {
			return err
		}
		as = append(as, sm)
	}
	var align text.Alignment
	if req.Align != "" {
		var err error
		if align, err = text.ParseAlignment(req.Align); err != nil {
			return err
		}
	}
	if len(as) == 0 && req.Align == "" {
		return errors.New("nothing to apply: give --style, --preset, --script or --align")
	}

	end := req.End
	if end < 0 {
		end = doc.CharacterCount()
	}
	e := richtext.NewEditor(doc, richtext.WithLogger(log))
	if err := e.Select(req.Start, end-req.Start); err != nil {
		return err
	}
	log.Info("applying styles", "selection", text.Selection{Start: req.Start, End: end}, "mutations", len(as))

	if len(as) > 0 {
		if err := e.ApplyStyleToSelection(richtext.Chain(as...)); err != nil {
			return err
		}
	}
	if sm != nil && sm.Err() != nil {
		return fmt.Errorf("script: %w", sm.Err())
	}
	if req.Align != "" {
		if err := e.ApplyAlignment(align); err != nil {
			return err
		}
	}
	return nil
}
