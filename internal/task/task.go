// Package task defines the core domain types for andamio.
package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tcastillo/andamio/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyTitle     = errors.New("title cannot be empty")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrDueBeforeStart = errors.New("due date must be on or after start date")
	ErrEmptySiteName  = errors.New("site name cannot be empty")
)

// Domain errors.
var (
	ErrTaskNotFound = errors.New("task not found")
	ErrSiteNotFound = errors.New("site not found")
)

// Status represents the state of a work item.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusWaiting    Status = "waiting"
	StatusBlocked    Status = "blocked"
	StatusDone       Status = "done"
)

// Statuses lists all valid statuses in display order.
func Statuses() []Status {
	return []Status{StatusNotStarted, StatusInProgress, StatusWaiting, StatusBlocked, StatusDone}
}

// ParseStatus converts a string to a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

// Valid returns true if the status is a known value.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusWaiting, StatusBlocked, StatusDone:
		return true
	default:
		return false
	}
}

// Task represents a work item on a construction site.
// StartDate and DueDate are optional; a task may carry neither, one, or both.
type Task struct {
	ID        string
	Title     string
	Status    Status
	StartDate *time.Time
	DueDate   *time.Time
	SiteID    string
	CreatedAt time.Time
}

// New creates a new Task with validation.
// status may be empty (defaults to not_started). start and due may be empty
// or in YYYY-MM-DD format; when both are present, start must not be after due.
func New(title, status, start, due, siteID string) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	st := StatusNotStarted
	if status != "" {
		parsed, err := ParseStatus(status)
		if err != nil {
			return nil, err
		}
		st = parsed
	}

	startDate, err := dateutil.ParseOptional(start)
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	dueDate, err := dateutil.ParseOptional(due)
	if err != nil {
		return nil, fmt.Errorf("due date: %w", err)
	}
	if startDate != nil && dueDate != nil && dueDate.Before(*startDate) {
		return nil, ErrDueBeforeStart
	}

	return &Task{
		ID:        uuid.NewString(),
		Title:     title,
		Status:    st,
		StartDate: startDate,
		DueDate:   dueDate,
		SiteID:    siteID,
		CreatedAt: time.Now(),
	}, nil
}

// HasDates returns true if the task carries at least one date.
func (t *Task) HasDates() bool {
	return t.StartDate != nil || t.DueDate != nil
}

// IsDone returns true if the task has done status.
func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}

// SetDates replaces both dates, truncated to midnight.
// The invariant start <= due is the caller's responsibility; the scheduling
// engine only emits ranges that already satisfy it.
func (t *Task) SetDates(start, due time.Time) {
	s := dateutil.TruncateToDay(start)
	d := dateutil.TruncateToDay(due)
	t.StartDate = &s
	t.DueDate = &d
}

// Site represents a construction site that tasks can be assigned to.
type Site struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// NewSite creates a new Site with validation.
func NewSite(name string) (*Site, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptySiteName
	}
	return &Site{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
	}, nil
}

// DatePatch carries a date change across the persistence boundary.
// Dates are YYYY-MM-DD strings; an empty field leaves that date unchanged.
type DatePatch struct {
	StartDate string
	DueDate   string
}
