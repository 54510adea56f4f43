package tui

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myenglish-suite/internal/adapter/memory"
	"github.com/heartmarshall/myenglish-suite/internal/content"
	"github.com/heartmarshall/myenglish-suite/internal/domain"
	"github.com/heartmarshall/myenglish-suite/internal/panel"
	"github.com/heartmarshall/myenglish-suite/internal/service/catalog"
	"github.com/heartmarshall/myenglish-suite/internal/service/listening"
	"github.com/heartmarshall/myenglish-suite/internal/workspace"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	sel := catalog.NewService(log, memory.NewCatalogStore(content.Builtin()))
	opts := listening.DefaultOptions()
	opts.Delay = time.Millisecond
	ws := workspace.New(log, sel, workspace.Config{Listening: opts, Delay: time.Millisecond}, uuid.New())
	t.Cleanup(ws.Close)
	return NewModel(context.Background(), ws)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func openListening(t *testing.T, m *Model) {
	t.Helper()
	send(m, key("down"), key("enter"))
	require.Equal(t, screenListening, m.screen)
	require.Equal(t, domain.ToolListening, m.ws.Dashboard.Selected())
}

func TestModel_DashboardNavigation(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	assert.Contains(t, m.View(), "Vocabulary Assistant")
	send(m, key("down"), key("down"))
	assert.Equal(t, 2, m.toolCursor)

	send(m, key("enter"))
	assert.Equal(t, screenDashboard, m.screen)
	assert.Contains(t, m.status, "Reading Assistant")
	assert.Empty(t, m.ws.Dashboard.Selected())
}

func TestModel_Achievements(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	for range m.ws.Dashboard.Tools() {
		send(m, key("down"))
	}
	send(m, key("enter"))
	require.Equal(t, screenAchievements, m.screen)
	assert.Contains(t, m.View(), "This week")

	send(m, key("esc"))
	assert.Equal(t, screenDashboard, m.screen)
}

func TestModel_ListeningSubmitAndSave(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	openListening(t, m)

	send(m, key("https://youtu.be/dQw4w9WgXcQ"))
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", m.input.Value())

	cmd := send(m, key("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.listFocus)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, m.ws.Listening.Wait(ctx))
	send(m, extractionDoneMsg{})

	st := m.ws.Listening.Snapshot()
	require.Equal(t, panel.StateReady, st.Status)
	assert.Contains(t, m.View(), "innovative")
	assert.Equal(t, "50 words extracted", m.status)

	// v1 starts saved; space toggles it off and back on.
	send(m, key(" "))
	assert.False(t, m.ws.Listening.Snapshot().Words[0].Saved)
	send(m, key(" "))
	assert.True(t, m.ws.Listening.Snapshot().Words[0].Saved)

	send(m, key("down"))
	assert.Equal(t, 1, m.wordCursor)

	send(m, key("esc"))
	assert.Equal(t, screenDashboard, m.screen)
	assert.Empty(t, m.ws.Dashboard.Selected())
}

func TestModel_ListeningRejectsUnknownURL(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	openListening(t, m)

	send(m, key("https://example.com"))
	cmd := send(m, key("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, "not a recognized YouTube URL", m.status)
	assert.Equal(t, panel.StateIdle, m.ws.Listening.Snapshot().Status)
}

func TestModel_QuitKeys(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
