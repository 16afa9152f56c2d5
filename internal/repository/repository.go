package repository

import (
	"time"

	"github.com/sanchalak/sanchalak-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// ListByTeamLeader lists all users whose team leader is the given leader
	ListByTeamLeader(leaderID uint64) ([]models.User, error)

	// Delete permanently removes a user
	Delete(id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// ListAll retrieves every task with the assignee resolved
	ListAll() ([]models.Task, error)

	// ListByAssignee retrieves tasks assigned to a user
	ListByAssignee(userID uint64) ([]models.Task, error)

	// ListByCreator retrieves tasks created by a leader
	ListByCreator(leaderID uint64) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete permanently removes a task
	Delete(id uint64) error
}

// ActivityFilter holds optional filters for reading the activity log
type ActivityFilter struct {
	UserID *uint64
	Role   *models.ActivityRole
	From   *time.Time
	To     *time.Time
}

// ActivityLogRepository defines the interface for the append-only
// activity log. There is intentionally no update or delete method.
type ActivityLogRepository interface {
	// Create appends a new entry
	Create(entry *models.ActivityLog) error

	// List returns entries newest-first, optionally filtered
	List(filter ActivityFilter) ([]models.ActivityLog, error)

	// ListRecentByUsers returns the most recent entries for a set of actors
	ListRecentByUsers(userIDs []uint64, limit int) ([]models.ActivityLog, error)

	// CountByUsersSince counts entries for a set of actors newer than since
	CountByUsersSince(userIDs []uint64, since time.Time) (int64, error)
}
