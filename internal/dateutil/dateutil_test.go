package dateutil

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2024-03-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(date(2024, 3, 1)) {
			t.Errorf("got %v, want %v", got, date(2024, 3, 1))
		}
	})

	t.Run("empty defaults to today", func(t *testing.T) {
		got, err := ParseDate("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		today := TruncateToDay(time.Now())
		if !got.Equal(today) {
			t.Errorf("got %v, want %v", got, today)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := ParseDate("03/01/2024")
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
		}
	})
}

func TestParseOptional(t *testing.T) {
	t.Run("empty yields nil", func(t *testing.T) {
		got, err := ParseOptional("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})

	t.Run("valid date", func(t *testing.T) {
		got, err := ParseOptional("2024-03-10")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || !got.Equal(date(2024, 3, 10)) {
			t.Errorf("got %v, want %v", got, date(2024, 3, 10))
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := ParseOptional("not-a-date")
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
		}
	})
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"wednesday rounds back", date(2024, 3, 6), date(2024, 3, 3)},
		{"sunday stays", date(2024, 3, 3), date(2024, 3, 3)},
		{"saturday rounds back six days", date(2024, 3, 9), date(2024, 3, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfWeek(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", date(2024, 3, 1), date(2024, 3, 1), 0},
		{"forward", date(2024, 3, 1), date(2024, 3, 10), 9},
		{"backward", date(2024, 3, 10), date(2024, 3, 1), -9},
		{"across month boundary", date(2024, 2, 23), date(2024, 3, 24), 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsWeekend(t *testing.T) {
	if !IsWeekend(date(2024, 3, 2)) { // Saturday
		t.Error("expected Saturday to be a weekend")
	}
	if !IsWeekend(date(2024, 3, 3)) { // Sunday
		t.Error("expected Sunday to be a weekend")
	}
	if IsWeekend(date(2024, 3, 4)) { // Monday
		t.Error("expected Monday not to be a weekend")
	}
}
