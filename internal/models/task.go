package models

import (
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "In-Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// ParseTaskStatus normalizes a client-supplied status string into the
// closed status set. The second return value is false for unknown values.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return TaskStatusPending, true
	case "in-progress":
		return TaskStatusInProgress, true
	case "completed":
		return TaskStatusCompleted, true
	default:
		return "", false
	}
}

// CanTransitionTo reports whether moving from the current status to next
// is an allowed edge. Completed is terminal.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	switch s {
	case TaskStatusPending:
		return next == TaskStatusInProgress
	case TaskStatusInProgress:
		return next == TaskStatusCompleted || next == TaskStatusPending
	default:
		return false
	}
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

// ParseTaskPriority normalizes a priority string; empty input falls back
// to Medium, matching the schema default.
func ParseTaskPriority(s string) (TaskPriority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return TaskPriorityMedium, true
	case "low":
		return TaskPriorityLow, true
	case "medium":
		return TaskPriorityMedium, true
	case "high":
		return TaskPriorityHigh, true
	default:
		return "", false
	}
}

type Task struct {
	ID           uint64       `gorm:"primarykey" json:"id"`
	Title        string       `gorm:"not null" json:"title"`
	Description  string       `gorm:"type:text;not null" json:"description"`
	Deadline     time.Time    `gorm:"not null" json:"deadline"`
	Priority     TaskPriority `gorm:"type:varchar(20);not null;default:'Medium'" json:"priority"`
	Status       TaskStatus   `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	AssignedToID uint64       `gorm:"not null;index" json:"assigned_to"`
	CreatedByID  uint64       `gorm:"not null;index" json:"created_by"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	// Relations
	AssignedTo *User `gorm:"foreignKey:AssignedToID" json:"assignee,omitempty"`
	CreatedBy  *User `gorm:"foreignKey:CreatedByID" json:"creator,omitempty"`
}

// Overdue reports whether the task's deadline has passed without the
// task being completed.
func (t *Task) Overdue(now time.Time) bool {
	return t.Deadline.Before(now) && t.Status != TaskStatusCompleted
}
