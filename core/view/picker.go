package view

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	log "github.com/sirupsen/logrus"

	"github.com/craftmap/mojmap/core/source"
)

// pageSize is how many versions are listed before a "Show more..." entry.
const pageSize = 10

// PickRelease shows an interactive list of versions and blocks until the
// user selects one or quits. The returned bool reports whether a selection
// was made. Versions beyond the first page are revealed through a
// "Show more..." entry, newest first.
func PickRelease(versions []source.Version) (string, bool, error) {
	if len(versions) == 0 {
		return "", false, fmt.Errorf("no versions to choose from")
	}

	// Suppress logging while the TUI owns the terminal.
	logger := log.StandardLogger()
	prevOut := logger.Out
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(prevOut)

	app := tview.NewApplication()

	list := tview.NewList().ShowSecondaryText(false)
	list.SetBorder(true).SetTitle(" Select a Minecraft version ")

	footer := tview.NewTextView().
		SetTextAlign(tview.AlignLeft).
		SetText(" ↑↓ navigate  Enter select  q quit")

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(list, 0, 1, true).
		AddItem(footer, 1, 0, false)

	var selected string
	var picked bool

	shown := 0
	var extend func()
	extend = func() {
		// Drop the previous "Show more..." entry before appending.
		if shown > 0 && shown < len(versions) {
			list.RemoveItem(list.GetItemCount() - 1)
		}

		end := shown + pageSize
		if end > len(versions) {
			end = len(versions)
		}
		for _, v := range versions[shown:end] {
			id := v.ID
			list.AddItem(id, "", 0, func() {
				selected = id
				picked = true
				app.Stop()
			})
		}
		shown = end

		if shown < len(versions) {
			list.AddItem("Show more...", "", 'm', extend)
		}
	}
	extend()

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			app.Stop()
			return nil
		}
		return event
	})

	if err := app.SetRoot(layout, true).Run(); err != nil {
		return "", false, fmt.Errorf("running version picker: %w", err)
	}

	return selected, picked, nil
}
