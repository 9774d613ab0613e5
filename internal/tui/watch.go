package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/gradedit/internal/store"
)

// WatchDocument forwards edits made to doc by other programs to send. The
// editor's own saves are filtered out by Document.Changed.
func WatchDocument(doc *store.Document, debounce time.Duration, send func(tea.Msg)) (*store.Watcher, error) {
	onChange := func() {
		changed, err := doc.Changed()
		if err != nil {
			send(DocumentErrorMsg{Err: err})
			return
		}
		if !changed {
			return
		}
		raw, err := doc.Load()
		if err != nil {
			send(DocumentErrorMsg{Err: err})
			return
		}
		send(DocumentChangedMsg{Raw: raw})
	}
	onError := func(err error) {
		send(DocumentErrorMsg{Err: err})
	}

	w, err := store.NewWatcher(doc.Path(), debounce, onChange, onError)
	if err != nil {
		return nil, err
	}
	w.Start()
	return w, nil
}
