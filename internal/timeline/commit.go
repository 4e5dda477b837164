package timeline

import (
	"github.com/tcastillo/andamio/internal/dateutil"
	"github.com/tcastillo/andamio/internal/task"
)

// UpdateFunc persists a date patch. It may be backed by anything from an
// in-memory slice to a database write; the mediator never waits on it and
// calls it once per accepted move, so it must tolerate repeated calls with
// monotonically adjusted values.
type UpdateFunc func(taskID string, patch task.DatePatch)

// Mediator bridges the drag controller to the outside: it owns session
// handles, forwards accepted candidates to Update, and fires the appropriate
// hook when a session closes. If Update is nil the mediator is inert and
// Begin refuses every session.
type Mediator struct {
	controller Controller

	// Update receives every accepted candidate (live preview).
	Update UpdateFunc
	// OnTaskClick fires when a session closes without ever emitting: a
	// click, not a drag.
	OnTaskClick func(taskID string)
	// OnScheduleAck fires once per session that emitted at least one
	// patch, at close. Never per move.
	OnScheduleAck func(taskID string)

	open *SessionHandle
}

// SessionHandle owns the routing of pointer events for one drag session.
// Move events only flow while the handle is open; Close detaches them and is
// idempotent, so every exit path (release, pointer-leave, view teardown) can
// call it safely.
type SessionHandle struct {
	m       *Mediator
	taskID  string
	emitted bool
	closed  bool
}

// Begin opens a drag session and returns its handle. Returns nil when the
// mediator has no Update wired or when a session is already open; the caller
// treats nil as a no-op.
func (m *Mediator) Begin(s Session) *SessionHandle {
	if m.Update == nil {
		return nil
	}
	if !m.controller.Begin(s) {
		return nil
	}
	h := &SessionHandle{m: m, taskID: s.TaskID}
	m.open = h
	return h
}

// Dragging reports whether a session is currently open.
func (m *Mediator) Dragging() bool {
	return m.open != nil
}

// CloseOpen closes the open session, if any. Teardown path.
func (m *Mediator) CloseOpen() {
	if m.open != nil {
		m.open.Close()
	}
}

// PointerMove routes a pointer position through the controller and forwards
// the accepted candidate, if any, to Update. A tripped scale guard closes the
// session quietly without firing either hook.
func (h *SessionHandle) PointerMove(pointerX, pixelsPerDay float64) {
	if h.closed {
		return
	}
	r, ok := h.m.controller.Move(pointerX, pixelsPerDay)
	if !h.m.controller.Dragging() {
		h.closed = true
		h.m.open = nil
		return
	}
	if !ok {
		return
	}
	h.emitted = true
	h.m.Update(h.taskID, task.DatePatch{
		StartDate: dateutil.FormatDate(r.Start),
		DueDate:   dateutil.FormatDate(r.End),
	})
}

// Close ends the session and fires the one-time close hook: acknowledgement
// if the drag emitted, click otherwise. Safe to call more than once.
func (h *SessionHandle) Close() {
	if h.closed {
		return
	}
	h.closed = true
	h.m.controller.End()
	h.m.open = nil
	if h.emitted {
		if h.m.OnScheduleAck != nil {
			h.m.OnScheduleAck(h.taskID)
		}
		return
	}
	if h.m.OnTaskClick != nil {
		h.m.OnTaskClick(h.taskID)
	}
}
