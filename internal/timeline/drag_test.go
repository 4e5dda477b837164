package timeline

import (
	"testing"
)

// A 300px track over a 30-day window: 10 pixels per day.
const pxPerDay = 10.0

func marchSession(mode Mode) Session {
	return Session{
		TaskID:        "t1",
		Mode:          mode,
		AnchorX:       100,
		OriginalStart: date(2024, 3, 1),
		OriginalEnd:   date(2024, 3, 10),
	}
}

func TestControllerBegin(t *testing.T) {
	t.Run("second begin is a no-op", func(t *testing.T) {
		var c Controller
		if !c.Begin(marchSession(ModeMove)) {
			t.Fatal("first begin should succeed")
		}
		other := marchSession(ModeResizeEnd)
		other.TaskID = "t2"
		if c.Begin(other) {
			t.Error("second begin should be rejected")
		}
		s, ok := c.Session()
		if !ok || s.TaskID != "t1" {
			t.Errorf("got session %+v, want the original t1 session", s)
		}
	})

	t.Run("end returns to idle", func(t *testing.T) {
		var c Controller
		c.Begin(marchSession(ModeMove))
		c.End()
		if c.Dragging() {
			t.Error("expected idle after end")
		}
		if _, ok := c.Session(); ok {
			t.Error("expected no session after end")
		}
	})
}

func TestControllerMove(t *testing.T) {
	t.Run("zero delta emits nothing", func(t *testing.T) {
		var c Controller
		c.Begin(marchSession(ModeMove))
		// 4px of movement rounds to zero days at 10px/day.
		if _, ok := c.Move(104, pxPerDay); ok {
			t.Error("sub-day movement should not emit")
		}
		if !c.Dragging() {
			t.Error("session should stay open")
		}
	})

	t.Run("move shifts both dates and preserves duration", func(t *testing.T) {
		var c Controller
		c.Begin(marchSession(ModeMove))
		r, ok := c.Move(100+5*pxPerDay, pxPerDay)
		if !ok {
			t.Fatal("expected an emission")
		}
		if !r.Start.Equal(date(2024, 3, 6)) || !r.End.Equal(date(2024, 3, 15)) {
			t.Errorf("got [%v, %v], want [2024-03-06, 2024-03-15]", r.Start, r.End)
		}
		if r.End.Sub(r.Start) != date(2024, 3, 10).Sub(date(2024, 3, 1)) {
			t.Error("move must preserve duration")
		}
	})

	t.Run("move backwards", func(t *testing.T) {
		var c Controller
		c.Begin(marchSession(ModeMove))
		r, ok := c.Move(100-3*pxPerDay, pxPerDay)
		if !ok {
			t.Fatal("expected an emission")
		}
		if !r.Start.Equal(date(2024, 2, 27)) || !r.End.Equal(date(2024, 3, 7)) {
			t.Errorf("got [%v, %v], want [2024-02-27, 2024-03-07]", r.Start, r.End)
		}
	})

	t.Run("resize start within range", func(t *testing.T) {
		var c Controller
		c.Begin(marchSession(ModeResizeStart))
		r, ok := c.Move(100+3*pxPerDay, pxPerDay)
		if !ok {
			t.Fatal("expected an emission")
		}
		if !r.Start.Equal(date(2024, 3, 4)) || !r.End.Equal(date(2024, 3, 10)) {
			t.Errorf("got [%v, %v], want [2024-03-04, 2024-03-10]", r.Start, r.End)
		}
	})

	t.Run("resize start rejected past the end edge", func(t *testing.T) {
		var c Controller
		c.Begin(marchSession(ModeResizeStart))
		// +20 days would put the start at 2024-03-21, past the 2024-03-10 end.
		if _, ok := c.Move(100+20*pxPerDay, pxPerDay); ok {
			t.Error("resize past the end edge should be rejected")
		}
		// +9 days lands exactly on the end; still rejected.
		if _, ok := c.Move(100+9*pxPerDay, pxPerDay); ok {
			t.Error("resize onto the end edge should be rejected")
		}
		if !c.Dragging() {
			t.Error("rejection must not end the session")
		}
	})

	t.Run("resize end rejected at or before the start edge", func(t *testing.T) {
		var c Controller
		c.Begin(marchSession(ModeResizeEnd))
		if _, ok := c.Move(100-9*pxPerDay, pxPerDay); ok {
			t.Error("resize onto the start edge should be rejected")
		}
		r, ok := c.Move(100-8*pxPerDay, pxPerDay)
		if !ok {
			t.Fatal("one day of remaining duration should be accepted")
		}
		if !r.Start.Equal(date(2024, 3, 1)) || !r.End.Equal(date(2024, 3, 2)) {
			t.Errorf("got [%v, %v], want [2024-03-01, 2024-03-02]", r.Start, r.End)
		}
	})

	t.Run("non-positive scale ends the session without emitting", func(t *testing.T) {
		var c Controller
		c.Begin(marchSession(ModeMove))
		if _, ok := c.Move(200, 0); ok {
			t.Error("zero scale must not emit")
		}
		if c.Dragging() {
			t.Error("zero scale must end the session")
		}
	})

	t.Run("move while idle emits nothing", func(t *testing.T) {
		var c Controller
		if _, ok := c.Move(200, pxPerDay); ok {
			t.Error("idle controller should ignore moves")
		}
	})
}
