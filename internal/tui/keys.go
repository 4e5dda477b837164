package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tcastillo/andamio/internal/task"
	"github.com/tcastillo/andamio/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		// Teardown path: an open drag session must not outlive the view.
		m.mediator.CloseOpen()
		m.drag.handle = nil
		m.drag.task = nil
		if pending := m.drainPending(); pending != nil {
			return m, tea.Sequence(pending, tea.Quit)
		}
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.visibleTasks())-1 {
			m.cursor++
		}
		m.clampScroll()

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		m.clampScroll()

	case "g", "home":
		m.cursor = 0
		m.clampScroll()

	case "G", "end":
		if n := len(m.visibleTasks()); n > 0 {
			m.cursor = n - 1
		}
		m.clampScroll()

	case "/":
		m.filtering = true
		m.filter.Focus()
		return m, nil

	case "y":
		if t := m.selectedTask(); t != nil {
			if err := clipboard.WriteAll(t.ID); err != nil {
				return m, commands.Status("Clipboard unavailable")
			}
			return m, commands.Status("Copied task id")
		}

	case "s":
		if t := m.selectedTask(); t != nil {
			next := nextStatus(t.Status)
			t.Status = next
			return m, tea.Batch(
				commands.SaveTaskStatus(m.repo, t.ID, next),
				commands.Status("Status: "+string(next)),
			)
		}

	case "r":
		m.loading = true
		return m, commands.LoadTasks(m.repo)

	case "enter":
		if t := m.selectedTask(); t != nil {
			return m, commands.Status(taskSummary(t))
		}
	}

	return m, nil
}

// nextStatus cycles through the statuses in display order.
func nextStatus(s task.Status) task.Status {
	statuses := task.Statuses()
	for i, st := range statuses {
		if st == s {
			return statuses[(i+1)%len(statuses)]
		}
	}
	return statuses[0]
}

// handleFilterKey handles input while the filter box is focused.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.cursor = 0
		m.scrollOffset = 0
		return m, nil

	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if n := len(m.visibleTasks()); m.cursor >= n {
		m.cursor = 0
		m.scrollOffset = 0
	}
	return m, cmd
}
