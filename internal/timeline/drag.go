package timeline

import (
	"math"
	"time"

	"github.com/tcastillo/andamio/internal/task"
)

// Mode selects which edge of the bar a drag manipulates.
type Mode string

const (
	ModeMove        Mode = "move"
	ModeResizeStart Mode = "resize_start"
	ModeResizeEnd   Mode = "resize_end"
)

// Session captures one pointer-held interaction. Candidate dates are always
// recomputed from the anchor and the original dates, so dropped or reordered
// move events cannot accumulate error.
type Session struct {
	TaskID        string
	Mode          Mode
	AnchorX       float64
	OriginalStart time.Time
	OriginalEnd   time.Time
}

// NewSession seeds a session from a task's current dates, resolving missing
// dates the same way the bar was positioned.
func NewSession(t *task.Task, mode Mode, anchorX float64, w Window) Session {
	start, end := EffectiveRange(w, t)
	return Session{
		TaskID:        t.ID,
		Mode:          mode,
		AnchorX:       anchorX,
		OriginalStart: start,
		OriginalEnd:   end,
	}
}

// DateRange is an accepted candidate emitted during a drag.
type DateRange struct {
	Start time.Time
	End   time.Time
}

type dragState int

const (
	stateIdle dragState = iota
	stateDragging
)

// Controller is the drag state machine. It is either idle or holds exactly
// one session; a second Begin while dragging is a no-op, so concurrent
// sessions cannot be represented through this API.
type Controller struct {
	state   dragState
	session Session
}

// Begin opens a session. Returns false without any effect if one is already
// open.
func (c *Controller) Begin(s Session) bool {
	if c.state == stateDragging {
		return false
	}
	c.state = stateDragging
	c.session = s
	return true
}

// Dragging reports whether a session is open.
func (c *Controller) Dragging() bool {
	return c.state == stateDragging
}

// Session returns the open session, if any.
func (c *Controller) Session() (Session, bool) {
	if c.state != stateDragging {
		return Session{}, false
	}
	return c.session, true
}

// End closes the open session. Whatever dates were last emitted stand; there
// is no rollback gesture.
func (c *Controller) End() {
	c.state = stateIdle
	c.session = Session{}
}

// Move processes a pointer position. A non-positive pixelsPerDay ends the
// session without emitting. Otherwise the candidate is computed from the
// session and the pointer alone; ok is false when nothing should be emitted
// (sub-day movement or a rejected resize).
func (c *Controller) Move(pointerX, pixelsPerDay float64) (DateRange, bool) {
	if c.state != stateDragging {
		return DateRange{}, false
	}
	if pixelsPerDay <= 0 {
		c.End()
		return DateRange{}, false
	}
	return candidate(c.session, pointerX, pixelsPerDay)
}

// candidate computes the new date range for a pointer position. Pure.
func candidate(s Session, pointerX, pixelsPerDay float64) (DateRange, bool) {
	deltaDays := int(math.Round((pointerX - s.AnchorX) / pixelsPerDay))
	if deltaDays == 0 {
		return DateRange{}, false
	}

	switch s.Mode {
	case ModeMove:
		return DateRange{
			Start: s.OriginalStart.AddDate(0, 0, deltaDays),
			End:   s.OriginalEnd.AddDate(0, 0, deltaDays),
		}, true
	case ModeResizeStart:
		newStart := s.OriginalStart.AddDate(0, 0, deltaDays)
		if !newStart.Before(s.OriginalEnd) {
			return DateRange{}, false
		}
		return DateRange{Start: newStart, End: s.OriginalEnd}, true
	case ModeResizeEnd:
		newEnd := s.OriginalEnd.AddDate(0, 0, deltaDays)
		if !newEnd.After(s.OriginalStart) {
			return DateRange{}, false
		}
		return DateRange{Start: s.OriginalStart, End: newEnd}, true
	}
	return DateRange{}, false
}
