package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chrisuehlinger/vibetext/html"
	"github.com/chrisuehlinger/vibetext/network"
	"github.com/chrisuehlinger/vibetext/text"
)

// readDocument loads a document from path, from stdin when path is "-", or
// over HTTP when path is a URL. Files ending in .txt are read as plain text,
// one paragraph per line; everything else is parsed as HTML.
func readDocument(ctx context.Context, path string) (*text.Document, error) {
	if network.IsURL(path) {
		return network.NewClient(network.WithLogger(slog.Default())).FetchDocument(ctx, path)
	}

	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	if strings.EqualFold(filepath.Ext(path), ".txt") {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return text.NewDocumentFromString(strings.TrimSuffix(string(data), "\n")), nil
	}

	doc, err := html.Import(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// writeDocument writes doc as HTML to path, or to stdout when path is "-".
func writeDocument(path string, doc *text.Document) error {
	if path == "-" {
		return html.Export(os.Stdout, doc)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := html.Export(f, doc); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

const sampleDocument = `<p style="text-align: center"><b>vibetext</b></p>
<p>Select a range of characters and apply a style to it.</p>
<p>The <i>quick</i> brown fox jumps over the <span style="color: red">lazy</span> dog.</p>`
