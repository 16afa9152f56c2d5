package dto

import (
	"time"

	"github.com/sanchalak/sanchalak-api/internal/models"
)

// LeaderStats are the headline counters on the leader dashboard.
type LeaderStats struct {
	TotalMembers    int   `json:"totalMembers"`
	ActiveTasks     int   `json:"activeTasks"`
	CompletedTasks  int   `json:"completedTasks"`
	PendingTasks    int   `json:"pendingTasks"`
	InProgressTasks int   `json:"inProgressTasks"`
	OverdueTasks    int64 `json:"overdueTasks"`
}

// DashboardActivity is a feed entry re-typed for the client by matching
// on the recorded action text.
type DashboardActivity struct {
	ID       uint64              `json:"id"`
	Type     string              `json:"type"`
	User     string              `json:"user"`
	Action   string              `json:"action"`
	Target   string              `json:"target"`
	Time     time.Time           `json:"time"`
	UserRole models.ActivityRole `json:"userRole"`
}

// Performance holds the leader dashboard's derived metrics.
type Performance struct {
	CompletionRate    int     `json:"completionRate"`
	AvgCompletionDays float64 `json:"avgCompletionDays"`
	TeamEngagement    int     `json:"teamEngagement"`
}

// StatusBreakdown counts tasks per status.
type StatusBreakdown struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

// PriorityBreakdown counts tasks per priority.
type PriorityBreakdown struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// TaskBreakdown groups the two breakdowns.
type TaskBreakdown struct {
	ByStatus   StatusBreakdown   `json:"byStatus"`
	ByPriority PriorityBreakdown `json:"byPriority"`
}

// LeaderDashboard is the full leader dashboard payload.
type LeaderDashboard struct {
	Stats            LeaderStats         `json:"stats"`
	TeamMembers      []MemberDTO         `json:"teamMembers"`
	RecentActivities []DashboardActivity `json:"recentActivities"`
	Performance      Performance         `json:"performance"`
	TaskBreakdown    TaskBreakdown       `json:"taskBreakdown"`
}

// MemberStats are the headline counters on the member dashboard.
type MemberStats struct {
	AssignedTasks   int `json:"assignedTasks"`
	PendingTasks    int `json:"pendingTasks"`
	InProgressTasks int `json:"inProgressTasks"`
	CompletedTasks  int `json:"completedTasks"`
	OverdueTasks    int `json:"overdueTasks"`
}

// UpcomingTask is a task due within the next week, annotated with the
// remaining days.
type UpcomingTask struct {
	ID                uint64              `json:"id"`
	Title             string              `json:"title"`
	Description       string              `json:"description"`
	Deadline          time.Time           `json:"deadline"`
	Priority          models.TaskPriority `json:"priority"`
	Status            models.TaskStatus   `json:"status"`
	CreatedBy         string              `json:"createdBy"`
	DaysUntilDeadline int                 `json:"daysUntilDeadline"`
}

// RecentCompletion is a recently completed task.
type RecentCompletion struct {
	Task        string    `json:"task"`
	CompletedAt time.Time `json:"completedAt"`
	CreatedBy   string    `json:"createdBy"`
}

// MemberActivity is a synthetic feed entry derived from the member's own
// task timestamps, not from the shared activity log.
type MemberActivity struct {
	ID     uint64            `json:"id"`
	Action string            `json:"action"`
	Target string            `json:"target"`
	Time   time.Time         `json:"time"`
	Status models.TaskStatus `json:"status"`
}

// MemberProgress holds the member dashboard's rates.
type MemberProgress struct {
	WeeklyProgress        int `json:"weeklyProgress"`
	WeeklyCompleted       int `json:"weeklyCompleted"`
	WeeklyTotal           int `json:"weeklyTotal"`
	OverallCompletionRate int `json:"overallCompletionRate"`
	OnTimeCompletionRate  int `json:"onTimeCompletionRate"`
}

// OverdueTask is an overdue task annotated with how late it is.
type OverdueTask struct {
	ID          uint64              `json:"id"`
	Title       string              `json:"title"`
	Deadline    time.Time           `json:"deadline"`
	Priority    models.TaskPriority `json:"priority"`
	DaysOverdue int                 `json:"daysOverdue"`
}

// MemberDashboard is the full member dashboard payload.
type MemberDashboard struct {
	Stats             MemberStats        `json:"stats"`
	UpcomingTasks     []UpcomingTask     `json:"upcomingTasks"`
	RecentCompletions []RecentCompletion `json:"recentCompletions"`
	RecentActivities  []MemberActivity   `json:"recentActivities"`
	Progress          MemberProgress     `json:"progress"`
	TaskBreakdown     TaskBreakdown      `json:"taskBreakdown"`
	OverdueTasks      []OverdueTask      `json:"overdueTasks"`
}
