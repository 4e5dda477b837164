package timeline

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tcastillo/andamio/internal/dateutil"
)

// WeekBucket is one week column header. Date is the Sunday the week starts on.
type WeekBucket struct {
	Date  time.Time
	Label string
}

// DayBucket is one day column. Weekend days render with distinct shading.
type DayBucket struct {
	Date      time.Time
	Label     string
	IsWeekend bool
}

// Grid holds the column descriptors derived from a window. TotalDays is the
// scale denominator shared by bar positioning and drag delta computation; it
// is never zero.
type Grid struct {
	Weeks     []WeekBucket
	Days      []DayBucket
	TotalDays int
}

// BuildGrid walks the window producing week buckets (7-day strides from the
// Sunday on or before the window start, labeled d/m) and day buckets (every
// day in [start, end] inclusive).
func BuildGrid(w Window) Grid {
	var g Grid

	for d := dateutil.StartOfWeek(w.Start); !d.After(w.End); d = d.AddDate(0, 0, 7) {
		g.Weeks = append(g.Weeks, WeekBucket{
			Date:  d,
			Label: fmt.Sprintf("%d/%d", d.Day(), int(d.Month())),
		})
	}

	for d := dateutil.TruncateToDay(w.Start); !d.After(w.End); d = d.AddDate(0, 0, 1) {
		g.Days = append(g.Days, DayBucket{
			Date:      d,
			Label:     strconv.Itoa(d.Day()),
			IsWeekend: dateutil.IsWeekend(d),
		})
	}

	g.TotalDays = dateutil.DaysBetween(w.Start, w.End)
	if g.TotalDays < 1 {
		g.TotalDays = 1
	}
	return g
}
