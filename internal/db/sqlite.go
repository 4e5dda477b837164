// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/tcastillo/andamio/internal/dateutil"
	"github.com/tcastillo/andamio/internal/task"
)

// SQLite implements task.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// CreateTask adds a new task to the repository.
func (s *SQLite) CreateTask(ctx context.Context, t *task.Task) error {
	query := `
		INSERT INTO tasks (id, title, status, start_date, due_date, site_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.Status,
		formatOptional(t.StartDate),
		formatOptional(t.DueDate),
		nullString(t.SiteID),
		t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}

	return nil
}

// GetTask retrieves a task by ID. Returns task.ErrTaskNotFound if absent.
func (s *SQLite) GetTask(ctx context.Context, id string) (*task.Task, error) {
	query := `
		SELECT id, title, status, start_date, due_date, site_id, created_at
		FROM tasks
		WHERE id = ?
	`

	t, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", task.ErrTaskNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying task: %w", err)
	}
	return t, nil
}

// ListTasks returns tasks ordered by start date, undated tasks last.
// An empty status returns all tasks.
func (s *SQLite) ListTasks(ctx context.Context, status task.Status) ([]*task.Task, error) {
	query := `
		SELECT id, title, status, start_date, due_date, site_id, created_at
		FROM tasks
	`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY start_date IS NULL, start_date, created_at`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTaskDates applies a date patch to a task. Empty patch fields leave
// the corresponding column unchanged, so a live drag can write both dates
// while a CLI edit touches only one.
func (s *SQLite) UpdateTaskDates(ctx context.Context, id string, patch task.DatePatch) error {
	if patch.StartDate == "" && patch.DueDate == "" {
		return nil
	}

	query := `
		UPDATE tasks
		SET start_date = COALESCE(?, start_date),
		    due_date   = COALESCE(?, due_date)
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		nullString(patch.StartDate),
		nullString(patch.DueDate),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating task dates: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", task.ErrTaskNotFound, id)
	}

	return nil
}

// UpdateTaskStatus changes a task's status.
func (s *SQLite) UpdateTaskStatus(ctx context.Context, id string, status task.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", task.ErrInvalidStatus, status)
	}

	result, err := s.db.ExecContext(ctx, `UPDATE tasks SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("updating task status: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", task.ErrTaskNotFound, id)
	}

	return nil
}

// DeleteTask removes a task.
func (s *SQLite) DeleteTask(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", task.ErrTaskNotFound, id)
	}

	return nil
}

// CreateSite adds a new site.
func (s *SQLite) CreateSite(ctx context.Context, site *task.Site) error {
	query := `INSERT INTO sites (id, name, created_at) VALUES (?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query, site.ID, site.Name, site.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting site: %w", err)
	}

	return nil
}

// ListSites returns all sites ordered by name.
func (s *SQLite) ListSites(ctx context.Context) ([]*task.Site, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, created_at FROM sites ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying sites: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sites []*task.Site
	for rows.Next() {
		var (
			site      task.Site
			createdAt string
		)
		if err := rows.Scan(&site.ID, &site.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning site: %w", err)
		}
		site.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created at: %w", err)
		}
		sites = append(sites, &site)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sites: %w", err)
	}

	return sites, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*task.Task, error) {
	var (
		t         task.Task
		startDate sql.NullString
		dueDate   sql.NullString
		siteID    sql.NullString
		createdAt string
	)

	err := row.Scan(&t.ID, &t.Title, &t.Status, &startDate, &dueDate, &siteID, &createdAt)
	if err != nil {
		return nil, err
	}

	if t.StartDate, err = parseOptionalDate(startDate); err != nil {
		return nil, fmt.Errorf("parsing start date: %w", err)
	}
	if t.DueDate, err = parseOptionalDate(dueDate); err != nil {
		return nil, fmt.Errorf("parsing due date: %w", err)
	}
	if siteID.Valid {
		t.SiteID = siteID.String
	}

	t.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}

	return &t, nil
}

// parseOptionalDate handles the formats SQLite returns for DATE columns:
// plain YYYY-MM-DD or a midnight RFC3339 placeholder.
func parseOptionalDate(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	s := v.String
	if len(s) > len(dateutil.Layout) {
		s = s[:len(dateutil.Layout)]
	}
	t, err := time.Parse(dateutil.Layout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatOptional(t *time.Time) any {
	if t == nil {
		return nil
	}
	return dateutil.FormatDate(*t)
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
