// Package tui provides a terminal revision browser for hglib.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hglib.dev/hglib/hg"
)

type state int

const (
	stateList state = iota
	stateDiff
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).MarginTop(1)
)

// Model is the bubbletea model for the revision browser. The list state
// shows the repository history newest-first; enter opens the diff of
// the selected revision in a viewport.
type Model struct {
	repo      *hg.Repo
	revisions []hg.Revision

	state    state
	cursor   int
	viewport viewport.Model
	width    int
	height   int
	err      error
}

// NewModel creates a browser over the given revisions, newest first.
func NewModel(repo *hg.Repo, revisions []hg.Revision) Model {
	return Model{repo: repo, revisions: revisions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = viewport.New(msg.Width, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateList:
			return m.updateList(msg)
		case stateDiff:
			return m.updateDiff(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.revisions)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.revisions) == 0 {
			return m, nil
		}
		rev := m.revisions[m.cursor]
		diffs, err := m.repo.Diff(revRef(rev.Parents), strconv.Itoa(rev.Rev))
		if err != nil {
			m.err = err
			return m, nil
		}
		var b strings.Builder
		for _, diff := range diffs {
			b.WriteString(diff.Diff)
		}
		content := b.String()
		if content == "" {
			content = "(empty diff)"
		}
		m.viewport.SetContent(content)
		m.viewport.GotoTop()
		m.state = stateDiff
	}
	return m, nil
}

// revRef picks the diff base for a revision: its first parent.
func revRef(parents []int) string {
	if len(parents) == 0 {
		return "null"
	}
	if parents[0] < 0 {
		return "null"
	}
	return strconv.Itoa(parents[0])
}

func (m Model) updateDiff(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.state = stateList
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.state == stateDiff {
		return m.viewport.View() + "\n" + helpStyle.Render("esc/q: back  ctrl+c: quit")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("history — " + m.repo.Path()))
	b.WriteString("\n\n")

	for i, rev := range m.revisions {
		summary, _, _ := strings.Cut(rev.Desc, "\n")
		line := fmt.Sprintf("%d:%s  %s  %s", rev.Rev, rev.Node, summary, dimStyle.Render(rev.Author))
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()))
	}

	b.WriteString(helpStyle.Render("\nj/k: move  enter: diff  q: quit"))
	return b.String()
}
