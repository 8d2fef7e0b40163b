// Package ui provides the rich-text editor user interface using Fyne.
package ui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/chrisuehlinger/vibetext/config"
	"github.com/chrisuehlinger/vibetext/css"
	"github.com/chrisuehlinger/vibetext/html"
	"github.com/chrisuehlinger/vibetext/richtext"
	"github.com/chrisuehlinger/vibetext/script"
	"github.com/chrisuehlinger/vibetext/text"
)

var fontFamilies = []string{"Arial", "Courier New", "Georgia", "Helvetica", "Times New Roman", "Verdana"}

// EditorUI is the main editor window.
type EditorUI struct {
	app    fyne.App
	window fyne.Window

	editor *richtext.Editor
	cfg    *config.Config
	engine *script.Engine
	log    *slog.Logger

	preview     *widget.RichText
	startEntry  *widget.Entry
	endEntry    *widget.Entry
	familySel   *widget.Select
	sizeSel     *widget.Select
	scriptEntry *widget.Entry
	status      *widget.Label

	loaded fyne.URI
}

// NewEditorUI creates the editor window for doc.
func NewEditorUI(doc *text.Document, cfg *config.Config, engine *script.Engine, log *slog.Logger) *EditorUI {
	a := app.New()
	w := a.NewWindow("Rich Text Editor")
	w.Resize(fyne.NewSize(960, 640))

	u := &EditorUI{
		app:    a,
		window: w,
		editor: richtext.NewEditor(doc, richtext.WithLogger(log)),
		cfg:    cfg,
		engine: engine,
		log:    log.With("component", "ui"),
	}
	u.setupUI()
	u.setupKeyboardShortcuts()
	u.refresh()
	return u
}

// Run shows the window and runs the event loop.
func (u *EditorUI) Run() {
	u.window.ShowAndRun()
}

func (u *EditorUI) setupUI() {
	openBtn := widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), u.openFile)
	saveBtn := widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), u.saveFile)

	toggle := func(label string, kind richtext.MutationKind) *widget.Button {
		return widget.NewButton(label, func() {
			u.applyStyle(richtext.Mutation{Kind: kind})
		})
	}
	styleBar := container.NewHBox(
		toggle("Bold", richtext.ToggleBold),
		toggle("Italic", richtext.ToggleItalic),
		toggle("Underline", richtext.ToggleUnderline),
		toggle("Strike", richtext.ToggleStrikethrough),
	)

	fgSel := widget.NewSelect(css.PaletteNames, func(name string) {
		u.applyColor(name, richtext.SetForeground)
	})
	fgSel.PlaceHolder = "Text color"
	bgSel := widget.NewSelect(css.PaletteNames, func(name string) {
		u.applyColor(name, richtext.SetBackground)
	})
	bgSel.PlaceHolder = "Highlight"

	u.familySel = widget.NewSelect(fontFamilies, func(string) { u.applyFont() })
	u.familySel.PlaceHolder = "Font"
	sizes := make([]string, 0, 19)
	for size := 12; size <= 30; size++ {
		sizes = append(sizes, strconv.Itoa(size))
	}
	u.sizeSel = widget.NewSelect(sizes, func(string) { u.applyFont() })
	u.sizeSel.PlaceHolder = "Size"

	align := func(label string, a text.Alignment) *widget.Button {
		return widget.NewButton(label, func() { u.applyAlignment(a) })
	}
	alignBar := container.NewHBox(
		align("Left", text.AlignLeft),
		align("Center", text.AlignCenter),
		align("Right", text.AlignRight),
	)

	presetSel := widget.NewSelect(u.cfg.PresetNames(), func(name string) {
		a, err := u.cfg.Preset(name)
		if err != nil {
			u.showError(err)
			return
		}
		u.applyStyle(a)
	})
	presetSel.PlaceHolder = "Preset"

	toolbar := container.NewVBox(
		container.NewHBox(openBtn, saveBtn, widget.NewSeparator(), styleBar, widget.NewSeparator(), alignBar),
		container.NewHBox(fgSel, bgSel, u.familySel, u.sizeSel, presetSel),
	)

	u.startEntry = widget.NewEntry()
	u.startEntry.SetPlaceHolder("start")
	u.endEntry = widget.NewEntry()
	u.endEntry.SetPlaceHolder("end")
	selectAll := widget.NewButton("All", func() {
		u.startEntry.SetText("0")
		u.endEntry.SetText(strconv.Itoa(u.editor.Document().CharacterCount()))
	})
	selectionBar := container.NewHBox(widget.NewLabel("Selection"), u.startEntry, u.endEntry, selectAll)

	u.scriptEntry = widget.NewEntry()
	u.scriptEntry.SetPlaceHolder(`span.bold = !span.bold; span.foreground = "teal"`)
	scriptBar := container.NewBorder(nil, nil, widget.NewLabel("Script"),
		widget.NewButton("Run", u.applyScript), u.scriptEntry)

	u.preview = widget.NewRichText()
	u.preview.Wrapping = fyne.TextWrapWord
	u.status = widget.NewLabel("")

	u.window.SetContent(container.NewBorder(
		container.NewVBox(toolbar, selectionBar, scriptBar),
		u.status, nil, nil,
		container.NewVScroll(u.preview),
	))
}

func (u *EditorUI) setupKeyboardShortcuts() {
	shortcut := func(key fyne.KeyName, kind richtext.MutationKind) {
		u.window.Canvas().AddShortcut(&desktop.CustomShortcut{
			KeyName:  key,
			Modifier: fyne.KeyModifierShortcutDefault,
		}, func(_ fyne.Shortcut) {
			u.applyStyle(richtext.Mutation{Kind: kind})
		})
	}
	shortcut(fyne.KeyB, richtext.ToggleBold)
	shortcut(fyne.KeyI, richtext.ToggleItalic)
	shortcut(fyne.KeyU, richtext.ToggleUnderline)
}

// selectFromEntries copies the selection fields into the editor.
func (u *EditorUI) selectFromEntries() error {
	start, length, err := parseSelection(u.startEntry.Text, u.endEntry.Text, u.editor.Document().CharacterCount())
	if err != nil {
		return err
	}
	return u.editor.Select(start, length)
}

func (u *EditorUI) applyStyle(a richtext.StyleApplicator) {
	if err := u.selectFromEntries(); err != nil {
		u.showError(err)
		return
	}
	if err := u.editor.ApplyStyleToSelection(a); err != nil {
		u.showError(err)
		return
	}
	u.refresh()
}

func (u *EditorUI) applyColor(name string, kind richtext.MutationKind) {
	c, ok := css.ParseColor(name)
	if !ok {
		return
	}
	u.applyStyle(richtext.Mutation{Kind: kind, Color: c})
}

func (u *EditorUI) applyFont() {
	family, size := u.familySel.Selected, u.sizeSel.Selected
	if family == "" || size == "" {
		return
	}
	f, err := text.ParseFont(family + " " + size)
	if err != nil {
		u.showError(err)
		return
	}
	u.applyStyle(richtext.Mutation{Kind: richtext.SetFont, Font: f})
}

func (u *EditorUI) applyAlignment(a text.Alignment) {
	if err := u.selectFromEntries(); err != nil {
		u.showError(err)
		return
	}
	if err := u.editor.ApplyAlignment(a); err != nil {
		u.showError(err)
		return
	}
	u.refresh()
}

func (u *EditorUI) applyScript() {
	src := strings.TrimSpace(u.scriptEntry.Text)
	if src == "" {
		return
	}
	m, err := u.engine.Compile(src)
	if err != nil {
		u.showError(err)
		return
	}
	u.applyStyle(m)
	if err := m.Err(); err != nil {
		u.showError(err)
	}
}

func (u *EditorUI) refresh() {
	u.preview.Segments = Segments(u.editor.Document())
	u.preview.Refresh()

	doc := u.editor.Document()
	msg := fmt.Sprintf("%d paragraphs, %d characters", len(doc.Paragraphs()), doc.CharacterCount())
	if sel, ok := u.editor.Selection(); ok && !sel.IsEmpty() {
		msg += fmt.Sprintf(", selected %s %q", sel, u.editor.SelectedText())
	}
	u.status.SetText(msg)
}

func (u *EditorUI) openFile() {
	dialog.ShowFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			u.showError(err)
			return
		}
		if r == nil {
			return
		}
		defer r.Close()

		doc, err := html.Import(r)
		if err != nil {
			u.showError(fmt.Errorf("opening %s: %w", r.URI().Name(), err))
			return
		}
		u.loaded = r.URI()
		u.editor.SetDocument(doc)
		u.window.SetTitle(r.URI().Path())
		u.log.Info("opened document", "path", r.URI().Path(), "characters", doc.CharacterCount())
		u.refresh()
	}, u.window)
}

func (u *EditorUI) saveFile() {
	save := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			u.showError(err)
			return
		}
		if w == nil {
			return
		}
		defer w.Close()

		if err := html.Export(w, u.editor.Document()); err != nil {
			u.showError(fmt.Errorf("saving %s: %w", w.URI().Name(), err))
			return
		}
		u.loaded = w.URI()
		u.window.SetTitle(w.URI().Path())
		u.log.Info("saved document", "path", w.URI().Path())
	}, u.window)
	if u.loaded != nil {
		save.SetFileName(u.loaded.Name())
	}
	save.Show()
}

func (u *EditorUI) showError(err error) {
	u.log.Warn("editor action failed", "err", err)
	dialog.ShowError(err, u.window)
}

// parseSelection converts the start and end fields into a start offset and
// length within a document of total characters. Blank fields select from
// the beginning or to the end.
func parseSelection(startText, endText string, total int) (int, int, error) {
	start, end := 0, total
	var err error
	if s := strings.TrimSpace(startText); s != "" {
		if start, err = strconv.Atoi(s); err != nil {
			return 0, 0, fmt.Errorf("invalid selection start %q", startText)
		}
	}
	if s := strings.TrimSpace(endText); s != "" {
		if end, err = strconv.Atoi(s); err != nil {
			return 0, 0, fmt.Errorf("invalid selection end %q", endText)
		}
	}
	if start < 0 || end > total || start > end {
		return 0, 0, fmt.Errorf("selection [%d, %d) outside [0, %d]", start, end, total)
	}
	return start, end - start, nil
}
