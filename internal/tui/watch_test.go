package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gradedit/internal/binding"
	"github.com/alexisbeaulieu97/gradedit/internal/gradient"
	"github.com/alexisbeaulieu97/gradedit/internal/store"
)

func TestWatchDocumentForwardsExternalEdits(t *testing.T) {
	doc := store.Open(filepath.Join(t.TempDir(), "gradient.yaml"))
	require.NoError(t, doc.Save(binding.Write(gradient.Default(), binding.Object)))

	msgs := make(chan tea.Msg, 8)
	w, err := WatchDocument(doc, 20*time.Millisecond, func(msg tea.Msg) { msgs <- msg })
	require.NoError(t, err)
	defer w.Stop()

	time.Sleep(50 * time.Millisecond)

	// Saving through the document is not an external edit.
	require.NoError(t, doc.Save(binding.Write(gradient.Default(), binding.List)))
	time.Sleep(150 * time.Millisecond)
	require.Empty(t, msgs)

	external := "- color: '#ff0000'\n  stop: 0\n- color: '#0000ff'\n  stop: 1\n"
	require.NoError(t, os.WriteFile(doc.Path(), []byte(external), 0o644))

	select {
	case msg := <-msgs:
		changed, ok := msg.(DocumentChangedMsg)
		require.True(t, ok, "unexpected message %T", msg)
		require.Len(t, changed.Raw, 2)
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatchDocumentReportsParseErrors(t *testing.T) {
	doc := store.Open(filepath.Join(t.TempDir(), "gradient.yaml"))

	msgs := make(chan tea.Msg, 8)
	w, err := WatchDocument(doc, 20*time.Millisecond, func(msg tea.Msg) { msgs <- msg })
	require.NoError(t, err)
	defer w.Stop()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(doc.Path(), []byte("stops: [\n"), 0o644))

	select {
	case msg := <-msgs:
		_, ok := msg.(DocumentErrorMsg)
		require.True(t, ok, "unexpected message %T", msg)
	case <-time.After(2 * time.Second):
		t.Fatal("no error reported")
	}
}
