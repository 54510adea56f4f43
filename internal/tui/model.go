// Package tui provides the Bubble Tea terminal shell: the dashboard tool
// list, the listening helper and the achievements tracker.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/myenglish-suite/internal/domain"
	"github.com/heartmarshall/myenglish-suite/internal/panel"
	"github.com/heartmarshall/myenglish-suite/internal/workspace"
)

type screen int

const (
	screenDashboard screen = iota
	screenListening
	screenAchievements
)

// extractionDoneMsg arrives once the listening panel has settled.
type extractionDoneMsg struct{}

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	savedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#1890FF"))
)

// Model implements the Bubble Tea suite UI over one workspace.
type Model struct {
	ctx context.Context
	ws  *workspace.Workspace

	screen     screen
	toolCursor int
	wordCursor int
	listFocus  bool
	status     string

	input   textinput.Model
	spinner spinner.Model

	width  int
	height int
}

// NewModel constructs the UI. ctx bounds the waits on panel tasks.
func NewModel(ctx context.Context, ws *workspace.Workspace) *Model {
	input := textinput.New()
	input.Placeholder = "https://www.youtube.com/watch?v=..."
	input.Prompt = "URL › "
	input.CharLimit = 512

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		ctx:     ctx,
		ws:      ws,
		input:   input,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-10, 10)
		return m, nil
	case spinner.TickMsg:
		if m.ws.Listening.Snapshot().Status != panel.StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case extractionDoneMsg:
		m.wordCursor = 0
		m.status = fmt.Sprintf("%d words extracted", len(m.ws.Listening.Snapshot().Words))
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenListening:
			return m.updateListening(msg)
		case screenAchievements:
			if msg.Type == tea.KeyEsc || msg.String() == "q" {
				m.back()
			}
			return m, nil
		default:
			return m.updateDashboard(msg)
		}
	}
	return m, nil
}

func (m *Model) back() {
	m.ws.Dashboard.Back()
	m.screen = screenDashboard
	m.input.Blur()
	m.status = ""
}

// ---------------------------------------------------------------------------
// Dashboard
// ---------------------------------------------------------------------------

func (m *Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tools := m.ws.Dashboard.Tools()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.toolCursor > 0 {
			m.toolCursor--
		}
	case "down", "j":
		if m.toolCursor < len(tools)-1 {
			m.toolCursor++
		}
	case "enter":
		tool := tools[m.toolCursor]
		if err := m.ws.Dashboard.SelectTool(m.ctx, tool.ID); err != nil {
			m.status = err.Error()
			return m, nil
		}
		switch tool.ID {
		case domain.ToolListening:
			m.screen = screenListening
			m.listFocus = false
			m.status = ""
			return m, m.input.Focus()
		case domain.ToolAchievements:
			m.screen = screenAchievements
			m.status = ""
		default:
			m.ws.Dashboard.Back()
			m.status = tool.Title + " is available over the REST API"
		}
	}
	return m, nil
}

func (m *Model) viewDashboard() string {
	var b strings.Builder
	quote := m.ws.Dashboard.Quote()
	b.WriteString(titleStyle.Render("English Learning Suite") + "\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("“%s” - %s", quote.Text, quote.Author)) + "\n\n")

	for i, t := range m.ws.Dashboard.Tools() {
		line := fmt.Sprintf("  %s  %s", t.Title, mutedStyle.Render(t.ButtonText))
		if i == m.toolCursor {
			line = selectedStyle.Render("› "+t.Title) + "  " + mutedStyle.Render(t.ButtonText)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// ---------------------------------------------------------------------------
// Achievements
// ---------------------------------------------------------------------------

func (m *Model) viewAchievements() string {
	var b strings.Builder
	a := m.ws.Dashboard.Achievements()
	b.WriteString(titleStyle.Render("Achievements") + "\n\n")
	for _, s := range a.Skills {
		b.WriteString(fmt.Sprintf("%-10s %s %3d%%  %d-day streak\n", s.Skill, bar(s.Percent, 20), s.Percent, s.Streak))
	}
	b.WriteString("\n" + titleStyle.Render("This week") + "\n")
	for _, d := range a.Week {
		b.WriteString(fmt.Sprintf("%-4s %s %3d%%\n", d.Day, bar(d.Percent, 20), d.Percent))
	}
	return b.String()
}

func bar(percent, width int) string {
	filled := percent * width / 100
	return barStyle.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", width-filled))
}

// View implements tea.Model.
func (m *Model) View() string {
	var body, help string
	switch m.screen {
	case screenListening:
		body = m.viewListening()
		help = "enter submit · tab switch focus · ↑/↓ move · space save · esc back"
	case screenAchievements:
		body = m.viewAchievements()
		help = "esc back"
	default:
		body = m.viewDashboard()
		help = "↑/↓ move · enter open · q quit"
	}

	var b strings.Builder
	b.WriteString(body)
	if m.status != "" {
		b.WriteString("\n" + mutedStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n" + footerStyle.Render(help))
	return b.String()
}
