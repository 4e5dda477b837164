package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tcastillo/andamio/internal/timeline"
	"github.com/tcastillo/andamio/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = NewLayout(msg.Width, msg.Height, m.config.UI.LabelWidth)
		m.clampScroll()
		return m, nil

	case commands.TasksLoadedMsg:
		m.tasks = msg.Tasks
		m.loading = false
		m.recomputeTimeline()
		if n := len(m.visibleTasks()); m.cursor >= n && n > 0 {
			m.cursor = n - 1
		}
		m.clampScroll()
		return m, nil

	case commands.TaskSavedMsg:
		return m, nil

	case commands.ErrMsg:
		m.err = msg.Err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		return m, nil

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}

// handleMouseMsg routes pointer events to the drag session. Press opens a
// session over a bar affordance, motion feeds the open session, release and
// leaving the track close it.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	LogMouse(msg)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.beginDrag(msg.X, msg.Y)
		}

	case tea.MouseActionMotion:
		if m.drag.handle == nil {
			break
		}
		if !m.layout.OnTrack(msg.X, msg.Y) {
			m.closeDrag()
			break
		}
		m.drag.handle.PointerMove(float64(msg.X), m.layout.PixelsPerDay(m.grid.TotalDays))
		if !m.mediator.Dragging() {
			// Scale guard closed the session underneath us.
			m.drag.handle = nil
			m.drag.task = nil
		}

	case tea.MouseActionRelease:
		if m.drag.handle != nil {
			m.closeDrag()
		}
	}

	return m, m.drainPending()
}

// beginDrag opens a drag session if the press landed on a bar. While a
// session is open further presses fall through to the mediator, which
// rejects them.
func (m *Model) beginDrag(x, y int) {
	if !m.layout.OnTrack(x, y) {
		return
	}
	visible := m.visibleTasks()
	idx, ok := m.layout.RowAt(y, m.scrollOffset, len(visible))
	if !ok {
		return
	}
	t := visible[idx]

	pos := timeline.Position(m.window, m.grid.TotalDays, t)
	barStart, barWidth := m.layout.BarSpan(pos)
	mode, ok := Affordance(x-m.layout.TrackLeft, barStart, barWidth)
	if !ok {
		return
	}

	handle := m.mediator.Begin(timeline.NewSession(t, mode, float64(x), m.window))
	if handle == nil {
		return
	}
	m.drag.handle = handle
	m.drag.task = t
	m.cursor = idx
	LogDragBegin(t.ID, string(mode), x)
}

// closeDrag ends the open session and rescales the board to the committed
// dates.
func (m *Model) closeDrag() {
	if m.drag.handle != nil {
		m.drag.handle.Close()
	}
	m.drag.handle = nil
	m.drag.task = nil
	m.recomputeTimeline()
}

// clampScroll keeps the cursor row inside the visible window.
func (m *Model) clampScroll() {
	if m.layout.TaskRows <= 0 {
		return
	}
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+m.layout.TaskRows {
		m.scrollOffset = m.cursor - m.layout.TaskRows + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}
