package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gradedit/internal/config"
)

func TestViewRendersEditorRows(t *testing.T) {
	t.Parallel()

	m, doc := newTestModel(t, threeStops(), &config.Config{ColorSpace: "hex", Expanded: collapsed().Expanded})
	view := m.View()

	require.Contains(t, view, doc.Path())
	require.Contains(t, view, "(hex)")
	require.Contains(t, view, "[+]")
	require.Contains(t, view, "[-]")
	require.Contains(t, view, "▲")
	require.Equal(t, 2, strings.Count(view, "△"))
	require.Contains(t, view, "1/3")
	require.Contains(t, view, "0.00")
	require.Contains(t, view, "#ff0000")
	require.NotContains(t, view, "color: ")
}

func TestViewKeepsLayoutRows(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil, collapsed())
	lines := strings.Split(m.View(), "\n")

	require.Greater(t, len(lines), markerRow)
	require.Contains(t, lines[buttonRow], "[+]")
	require.Contains(t, lines[markerRow], "▲")
}

func TestViewShowsPopupWhenExpanded(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil, nil)
	view := m.View()
	require.Contains(t, view, "color: ")
	require.Contains(t, view, "tab to edit")
	require.Contains(t, view, "rgb")
}

func TestViewShowsStatusAndErrors(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil, collapsed())
	m.status = "reloaded from disk"
	require.Contains(t, m.View(), "reloaded from disk")

	m.err = errors.New("disk full")
	view := m.View()
	require.Contains(t, view, "error: disk full")
	require.NotContains(t, view, "reloaded from disk")
}

func TestMarkerColumnClamps(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil, collapsed())
	require.Equal(t, 0, m.markerColumn(-1))
	require.Equal(t, m.stripWidth-1, m.markerColumn(1))
	require.Equal(t, 29, m.markerColumn(0.5))
}
