package timeline

import (
	"math"
	"testing"
)

func TestPosition(t *testing.T) {
	w := Window{Start: date(2024, 2, 23), End: date(2024, 3, 24)}
	const total = 30

	t.Run("both dates", func(t *testing.T) {
		p := Position(w, total, newTask("a", datep(2024, 3, 1), datep(2024, 3, 10)))
		wantLeft := 7.0 / 30 * 100
		wantWidth := 9.0 / 30 * 100
		if math.Abs(p.LeftPercent-wantLeft) > 1e-9 {
			t.Errorf("got left %v, want %v", p.LeftPercent, wantLeft)
		}
		if math.Abs(p.WidthPercent-wantWidth) > 1e-9 {
			t.Errorf("got width %v, want %v", p.WidthPercent, wantWidth)
		}
	})

	t.Run("start only anchors a minimal bar", func(t *testing.T) {
		p := Position(w, total, newTask("a", datep(2024, 3, 1), nil))
		wantLeft := 7.0 / 30 * 100
		if math.Abs(p.LeftPercent-wantLeft) > 1e-9 {
			t.Errorf("got left %v, want %v", p.LeftPercent, wantLeft)
		}
		// One-day duration: 1/30 ≈ 3.33%, above the floor.
		wantWidth := 1.0 / 30 * 100
		if math.Abs(p.WidthPercent-wantWidth) > 1e-9 {
			t.Errorf("got width %v, want %v", p.WidthPercent, wantWidth)
		}
	})

	t.Run("due only anchors at the due date", func(t *testing.T) {
		p := Position(w, total, newTask("a", nil, datep(2024, 3, 10)))
		wantLeft := 16.0 / 30 * 100
		if math.Abs(p.LeftPercent-wantLeft) > 1e-9 {
			t.Errorf("got left %v, want %v", p.LeftPercent, wantLeft)
		}
	})

	t.Run("undated task spans the whole window", func(t *testing.T) {
		p := Position(w, total, newTask("a", nil, nil))
		if p.LeftPercent != 0 {
			t.Errorf("got left %v, want 0", p.LeftPercent)
		}
		if p.WidthPercent != 100 {
			t.Errorf("got width %v, want 100", p.WidthPercent)
		}
	})

	t.Run("width floor on compressed scales", func(t *testing.T) {
		// A one-day task against a year-long window.
		wide := Window{Start: date(2024, 1, 1), End: date(2024, 12, 31)}
		p := Position(wide, 365, newTask("a", datep(2024, 6, 1), datep(2024, 6, 2)))
		if p.WidthPercent != 2 {
			t.Errorf("got width %v, want the 2%% floor", p.WidthPercent)
		}
	})

	t.Run("undated bar in fallback window anchors today", func(t *testing.T) {
		// No dates anywhere: window is [today, today+30].
		today := date(2024, 6, 1)
		fw := ComputeWindow(nil, today)
		g := BuildGrid(fw)
		p := Position(fw, g.TotalDays, newTask("a", nil, nil))
		if p.LeftPercent != 0 {
			t.Errorf("got left %v, want 0 (anchored at today)", p.LeftPercent)
		}
	})
}
