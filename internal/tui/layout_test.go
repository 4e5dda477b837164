package tui

import (
	"testing"

	"github.com/tcastillo/andamio/internal/timeline"
)

func TestNewLayout(t *testing.T) {
	l := NewLayout(120, 24, 28)

	if l.TrackLeft != 29 {
		t.Errorf("got track left %d, want 29", l.TrackLeft)
	}
	if l.TrackWidth != 91 {
		t.Errorf("got track width %d, want 91", l.TrackWidth)
	}
	if l.TaskRows != 24-headerRows-footerRows {
		t.Errorf("got %d task rows, want %d", l.TaskRows, 24-headerRows-footerRows)
	}

	t.Run("tiny terminal clamps to zero", func(t *testing.T) {
		l := NewLayout(10, 3, 28)
		if l.TrackWidth != 0 {
			t.Errorf("got track width %d, want 0", l.TrackWidth)
		}
		if l.TaskRows != 0 {
			t.Errorf("got %d task rows, want 0", l.TaskRows)
		}
	})
}

func TestPixelsPerDay(t *testing.T) {
	l := NewLayout(120, 24, 28)

	if got := l.PixelsPerDay(0); got != 0 {
		t.Errorf("zero days: got %v, want 0", got)
	}
	got := l.PixelsPerDay(30)
	want := 91.0 / 30.0
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRowAt(t *testing.T) {
	l := NewLayout(120, 24, 28)

	tests := []struct {
		name   string
		y      int
		scroll int
		count  int
		want   int
		ok     bool
	}{
		{"first task row", headerRows, 0, 5, 0, true},
		{"third task row", headerRows + 2, 0, 5, 2, true},
		{"scrolled", headerRows, 3, 5, 3, true},
		{"header row misses", headerRows - 1, 0, 5, 0, false},
		{"footer row misses", headerRows + l.TaskRows, 0, 100, 0, false},
		{"beyond task count", headerRows + 4, 0, 2, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.RowAt(tt.y, tt.scroll, tt.count)
			if ok != tt.ok {
				t.Fatalf("got ok %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("got row %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOnTrack(t *testing.T) {
	l := NewLayout(120, 24, 28)

	if l.OnTrack(10, headerRows) {
		t.Error("label column should not be on the track")
	}
	if !l.OnTrack(l.TrackLeft, headerRows) {
		t.Error("first track cell should be on the track")
	}
	if l.OnTrack(l.TrackLeft, 0) {
		t.Error("title row should not be on the track")
	}
	if l.OnTrack(120, headerRows) {
		t.Error("past the right edge should not be on the track")
	}
	if l.OnTrack(l.TrackLeft, headerRows+l.TaskRows) {
		t.Error("footer rows should not be on the track")
	}
}

func TestBarSpan(t *testing.T) {
	l := NewLayout(120, 24, 28) // track width 91

	t.Run("mid-window bar", func(t *testing.T) {
		start, width := l.BarSpan(timeline.BarPosition{LeftPercent: 50, WidthPercent: 10})
		if start != 45 {
			t.Errorf("got start %d, want 45", start)
		}
		if width != 9 {
			t.Errorf("got width %d, want 9", width)
		}
	})

	t.Run("never narrower than one cell", func(t *testing.T) {
		_, width := l.BarSpan(timeline.BarPosition{LeftPercent: 0, WidthPercent: 0.1})
		if width < 1 {
			t.Errorf("got width %d, want at least 1", width)
		}
	})

	t.Run("clamped to the track", func(t *testing.T) {
		start, width := l.BarSpan(timeline.BarPosition{LeftPercent: 99, WidthPercent: 10})
		if start+width > l.TrackWidth {
			t.Errorf("bar [%d, %d) escapes the %d-cell track", start, start+width, l.TrackWidth)
		}
	})
}

func TestAffordance(t *testing.T) {
	tests := []struct {
		name     string
		x        int
		barStart int
		barWidth int
		want     timeline.Mode
		ok       bool
	}{
		{"left edge resizes start", 10, 10, 8, timeline.ModeResizeStart, true},
		{"right edge resizes end", 17, 10, 8, timeline.ModeResizeEnd, true},
		{"interior moves", 13, 10, 8, timeline.ModeMove, true},
		{"left of bar misses", 9, 10, 8, "", false},
		{"right of bar misses", 18, 10, 8, "", false},
		{"single-cell bar always moves", 10, 10, 1, timeline.ModeMove, true},
		{"two-cell bar always moves", 11, 10, 2, timeline.ModeMove, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Affordance(tt.x, tt.barStart, tt.barWidth)
			if ok != tt.ok {
				t.Fatalf("got ok %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("got mode %q, want %q", got, tt.want)
			}
		})
	}
}
