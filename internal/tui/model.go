package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Shubham12sharma/Assign-Alert/internal/engine"
	"github.com/Shubham12sharma/Assign-Alert/internal/store"
	"github.com/Shubham12sharma/Assign-Alert/internal/ui"
)

// The board is the drag-and-drop surface: tasks move between the five kanban
// columns through UpdateTaskStatus, one column at a time.

type boardModel struct {
	svc   *engine.Service
	scope string

	width  int
	height int

	tasks  []store.Task
	unread int

	col      int // selected column, indexes engine.TaskStatuses()
	row      int // selected card within the column
	lastLog  string
	loading  bool
	err      error
}

type loadedMsg struct {
	tasks  []store.Task
	unread int
	err    error
}

type movedMsg struct {
	task store.Task
	err  error
}

func newBoardModel(svc *engine.Service, scope string) boardModel {
	return boardModel{
		svc:     svc,
		scope:   scope,
		loading: true,
		lastLog: "Loading…",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.svc.FetchTasks(m.scope).Settle()
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{tasks: tasks, unread: m.svc.Store().UnreadCount()}
	}
}

func (m boardModel) moveCmd(taskID string, to engine.TaskStatus) tea.Cmd {
	return func() tea.Msg {
		t, err := m.svc.UpdateTaskStatus(taskID, to).Settle()
		return movedMsg{task: t, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.tasks = msg.tasks
		m.unread = msg.unread
		m.clampSelection()
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case movedMsg:
		if msg.err != nil {
			m.lastLog = "Move failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Moved %q to %s.", msg.task.Title, msg.task.Status)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "left", "h":
			if m.col > 0 {
				m.col--
				m.clampSelection()
			}
			return m, nil
		case "right", "l":
			if m.col < len(engine.TaskStatuses())-1 {
				m.col++
				m.clampSelection()
			}
			return m, nil
		case "up", "k":
			if m.row > 0 {
				m.row--
			}
			return m, nil
		case "down", "j":
			if m.row < len(m.columnTasks(m.col))-1 {
				m.row++
			}
			return m, nil
		case "shift+left", "H":
			return m.moveSelected(-1)
		case "shift+right", "L":
			return m.moveSelected(1)
		}
	}
	return m, nil
}

// moveSelected shifts the selected task one column left or right.
func (m boardModel) moveSelected(dir int) (tea.Model, tea.Cmd) {
	statuses := engine.TaskStatuses()
	target := m.col + dir
	if target < 0 || target >= len(statuses) {
		return m, nil
	}
	tasks := m.columnTasks(m.col)
	if m.row < 0 || m.row >= len(tasks) {
		m.lastLog = "Nothing selected."
		return m, nil
	}
	t := tasks[m.row]
	m.lastLog = fmt.Sprintf("Moving %q…", t.Title)
	return m, m.moveCmd(t.ID, statuses[target])
}

func (m *boardModel) clampSelection() {
	n := len(m.columnTasks(m.col))
	if m.row >= n {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func (m boardModel) columnTasks(col int) []store.Task {
	status := string(engine.TaskStatuses()[col])
	var out []store.Task
	for _, t := range m.tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

var columnTitles = map[engine.TaskStatus]string{
	engine.StatusBacklog:    "Backlog",
	engine.StatusTodo:       "To Do",
	engine.StatusInProgress: "In Progress",
	engine.StatusReview:     "Review",
	engine.StatusDone:       "Done",
}

func (m boardModel) View() string {
	header := ui.Heading(ui.IconTask, "Task Board")
	if m.unread > 0 {
		header += "  " + ui.Warn.Render(fmt.Sprintf("%s %d unread", ui.IconBell, m.unread))
	}
	if m.loading {
		return header + "\n\n" + ui.Muted.Render("Loading…") + "\n"
	}
	if m.err != nil {
		return header + "\n\n" + ui.Bad.Render(ui.IconError+" "+m.err.Error()) + "\n"
	}

	colWidth := 24
	if m.width > 0 {
		if w := m.width/len(engine.TaskStatuses()) - 4; w > 16 {
			colWidth = w
		}
	}

	var columns []string
	for i, status := range engine.TaskStatuses() {
		columns = append(columns, m.renderColumn(i, status, colWidth))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	help := ui.Muted.Render("←/→ column · ↑/↓ card · H/L move task · r refresh · q quit")
	return header + "\n\n" + board + "\n" + ui.Muted.Render(m.lastLog) + "\n" + help + "\n"
}

func (m boardModel) renderColumn(col int, status engine.TaskStatus, width int) string {
	tasks := m.columnTasks(col)
	title := fmt.Sprintf("%s (%d)", columnTitles[status], len(tasks))

	var body string
	if len(tasks) == 0 {
		body = ui.Muted.Render("—")
	}
	for i, t := range tasks {
		line := truncate(t.Title, width)
		meta := ui.PriorityText(t.Priority)
		if t.StoryPoints > 0 {
			meta += ui.Muted.Render(fmt.Sprintf(" · %dpt", t.StoryPoints))
		}
		if col == m.col && i == m.row {
			line = ui.Selected.Render(line)
		}
		if body != "" {
			body += "\n"
		}
		body += line + "\n" + meta
	}

	panel := ui.Panel
	if col == m.col {
		panel = ui.PanelActive
	}
	return panel.Width(width).Render(ui.H2.Render(title) + "\n" + body)
}

func truncate(s string, max int) string {
	if max <= 1 || len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
