package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/heartmarshall/myenglish-suite/internal/panel"
)

// visibleWords caps the word list when the window height is unknown.
const visibleWords = 12

func (m *Model) updateListening(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.back()
		return m, nil
	case tea.KeyTab:
		m.listFocus = !m.listFocus
		if m.listFocus {
			m.input.Blur()
			return m, nil
		}
		return m, m.input.Focus()
	}

	if !m.listFocus {
		if msg.Type == tea.KeyEnter {
			return m, m.submit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	words := m.ws.Listening.Snapshot().Words
	switch msg.String() {
	case "up", "k":
		if m.wordCursor > 0 {
			m.wordCursor--
		}
	case "down", "j":
		if m.wordCursor < len(words)-1 {
			m.wordCursor++
		}
	case " ":
		if m.wordCursor < len(words) {
			m.toggleSave(words[m.wordCursor].ID, words[m.wordCursor].Saved)
		}
	}
	return m, nil
}

func (m *Model) submit() tea.Cmd {
	url := strings.TrimSpace(m.input.Value())
	if !m.ws.Listening.Submit(m.ctx, url) {
		m.status = "not a recognized YouTube URL"
		return nil
	}
	m.status = ""
	m.listFocus = true
	m.input.Blur()

	listening := m.ws.Listening
	ctx := m.ctx
	wait := func() tea.Msg {
		_ = listening.Wait(ctx)
		return extractionDoneMsg{}
	}
	return tea.Batch(m.spinner.Tick, wait)
}

func (m *Model) toggleSave(id string, saved bool) {
	var err error
	if saved {
		err = m.ws.Listening.RemoveWord(m.ctx, id)
	} else {
		err = m.ws.Listening.SaveWord(m.ctx, id)
	}
	if err != nil {
		m.status = err.Error()
	}
}

func (m *Model) viewListening() string {
	st := m.ws.Listening.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Listening Helper") + "  " + mutedStyle.Render("level "+string(st.Level)) + "\n\n")
	b.WriteString(m.input.View() + "\n\n")

	if st.Status == panel.StateLoading {
		b.WriteString(m.spinner.View() + " Extracting vocabulary...\n")
		return b.String()
	}
	if st.VideoID != "" {
		b.WriteString(mutedStyle.Render("video "+st.VideoID) + "\n")
	}

	rows := visibleWords
	if m.height > 14 {
		rows = m.height - 14
	}
	start := 0
	if m.wordCursor >= rows {
		start = m.wordCursor - rows + 1
	}
	end := min(start+rows, len(st.Words))

	width := m.width
	if width <= 0 {
		width = 80
	}
	for i := start; i < end; i++ {
		w := st.Words[i]
		mark := mutedStyle.Render("☆")
		if w.Saved {
			mark = savedStyle.Render("★")
		}
		word := runewidth.FillRight(runewidth.Truncate(w.Word, 16, "…"), 16)
		def := runewidth.Truncate(w.Definition, max(width-32, 10), "…")
		line := fmt.Sprintf("%s %s %s  %s", mark, mutedStyle.Render(w.Timestamp), word, mutedStyle.Render(def))
		if i == m.wordCursor && m.listFocus {
			line = selectedStyle.Render("›") + line
		} else {
			line = " " + line
		}
		b.WriteString(line + "\n")
	}
	if st.Status == panel.StateIdle && len(st.Words) > 0 {
		b.WriteString(mutedStyle.Render("sample extraction, submit a URL to start") + "\n")
	}
	if len(st.Words) > end {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("… %d more", len(st.Words)-end)) + "\n")
	}
	return b.String()
}
