package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/xlab/treeprint"

	"github.com/chrisuehlinger/vibetext/text"
)

var cmdDump = &cli.Command{
	Name:      "dump",
	Usage:     "print the document tree of a file",
	ArgsUsage: `<file or url>`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "validate",
			Usage: "check tree invariants after loading",
		},
		&cli.BoolFlag{
			Name:  "tree",
			Usage: "draw the tree with character ranges",
		},
	},
	Action: func(cctx *cli.Context) error {
		if cctx.Args().Len() != 1 {
			return fmt.Errorf("expected a single file argument")
		}
		if _, err := loadConfig(cctx); err != nil {
			return err
		}
		doc, err := readDocument(cctx.Context, cctx.Args().First())
		if err != nil {
			return err
		}
		if cctx.Bool("validate") {
			if err := doc.Validate(); err != nil {
				return err
			}
		}
		if cctx.Bool("tree") {
			fmt.Println(treeView(doc.AsNode()).String())
			return nil
		}
		return text.Dump(os.Stdout, doc.AsNode())
	},
}

// treeView draws n and its descendants, each labelled with the character
// range it covers.
func treeView(n *text.Node) treeprint.Tree {
	tree := treeprint.NewWithRoot(describeRange(n))
	addChildren(tree, n)
	return tree
}

func addChildren(tree treeprint.Tree, n *text.Node) {
	for _, child := range n.Children() {
		if child.ChildCount() == 0 {
			tree.AddNode(describeRange(child))
			continue
		}
		addChildren(tree.AddBranch(describeRange(child)), child)
	}
}

func describeRange(n *text.Node) string {
	return text.Describe(n) + " " + text.SpanOf(n).String()
}

var cmdPresets = &cli.Command{
	Name:  "presets",
	Usage: "list the configured style presets",
	Action: func(cctx *cli.Context) error {
		cfg, err := loadConfig(cctx)
		if err != nil {
			return err
		}
		for _, name := range cfg.PresetNames() {
			if _, err := cfg.Preset(name); err != nil {
				return err
			}
			fmt.Printf("%s\t%s\n", name, strings.Join(cfg.Presets[name], ", "))
		}
		return nil
	},
}
