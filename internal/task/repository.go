package task

import "context"

// Repository defines the persistence operations for tasks and sites.
type Repository interface {
	CreateTask(ctx context.Context, t *Task) error
	GetTask(ctx context.Context, id string) (*Task, error)
	// ListTasks returns tasks ordered by creation time. An empty status
	// returns all tasks.
	ListTasks(ctx context.Context, status Status) ([]*Task, error)
	// UpdateTaskDates applies a date patch. An empty field in the patch
	// leaves that date unchanged.
	UpdateTaskDates(ctx context.Context, id string, patch DatePatch) error
	UpdateTaskStatus(ctx context.Context, id string, status Status) error
	DeleteTask(ctx context.Context, id string) error

	CreateSite(ctx context.Context, s *Site) error
	ListSites(ctx context.Context) ([]*Site, error)

	Close() error
}
