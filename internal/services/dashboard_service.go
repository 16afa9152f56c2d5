package services

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/sanchalak/sanchalak-api/internal/constants"
	"github.com/sanchalak/sanchalak-api/internal/dto"
	"github.com/sanchalak/sanchalak-api/internal/models"
	"github.com/sanchalak/sanchalak-api/internal/repository"
)

// DashboardService derives read-only statistics from the task store and
// the activity log. It holds no state of its own; every call recomputes
// from current store contents.
type DashboardService struct {
	taskRepo     repository.TaskRepository
	userRepo     repository.UserRepository
	activityRepo repository.ActivityLogRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(taskRepo repository.TaskRepository, userRepo repository.UserRepository, activityRepo repository.ActivityLogRepository) *DashboardService {
	return &DashboardService{
		taskRepo:     taskRepo,
		userRepo:     userRepo,
		activityRepo: activityRepo,
	}
}

// LeaderDashboard computes the leader-facing aggregation.
func (s *DashboardService) LeaderDashboard(leaderID uint64) (*dto.LeaderDashboard, error) {
	now := time.Now()

	team, err := s.userRepo.ListByTeamLeader(leaderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	members := make([]models.User, 0, len(team))
	for _, u := range team {
		if u.Role == models.RoleMember {
			members = append(members, u)
		}
	}

	allTasks, err := s.taskRepo.ListByCreator(leaderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	breakdown := breakdownOf(allTasks)

	overdue := 0
	for _, task := range allTasks {
		if task.Overdue(now) {
			overdue++
		}
	}

	actorIDs := make([]uint64, 0, len(members)+1)
	actorIDs = append(actorIDs, leaderID)
	for _, m := range members {
		actorIDs = append(actorIDs, m.ID)
	}

	recent, err := s.activityRepo.ListRecentByUsers(actorIDs, constants.RecentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent activities: %w", err)
	}

	activities := make([]dto.DashboardActivity, 0, len(recent))
	for _, entry := range recent {
		activity := dto.DashboardActivity{
			ID:       entry.ID,
			Type:     activityType(entry.Action),
			Action:   entry.Action,
			Target:   entry.Target,
			Time:     entry.Timestamp,
			UserRole: entry.Role,
		}
		if entry.User != nil {
			activity.User = entry.User.Name
		}
		activities = append(activities, activity)
	}

	activityCount, err := s.activityRepo.CountByUsersSince(actorIDs, now.Add(-7*24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to count recent activity: %w", err)
	}

	teamEngagement := 0
	if len(members) > 0 {
		raw := int(math.Round(float64(activityCount) / float64(len(members)+1) * 20))
		teamEngagement = min(constants.TeamEngagementCap, raw)
	}

	completed := breakdown.ByStatus.Completed

	return &dto.LeaderDashboard{
		Stats: dto.LeaderStats{
			TotalMembers:    len(members),
			ActiveTasks:     breakdown.ByStatus.Pending + breakdown.ByStatus.InProgress,
			CompletedTasks:  completed,
			PendingTasks:    breakdown.ByStatus.Pending,
			InProgressTasks: breakdown.ByStatus.InProgress,
			OverdueTasks:    int64(overdue),
		},
		TeamMembers:      dto.ToMemberDTOs(members),
		RecentActivities: activities,
		Performance: dto.Performance{
			CompletionRate:    rate(completed, len(allTasks)),
			AvgCompletionDays: avgCompletionDays(allTasks, now),
			TeamEngagement:    teamEngagement,
		},
		TaskBreakdown: breakdown,
	}, nil
}

// MemberDashboard computes the member-facing aggregation. Member-visible
// activity is derived from the member's own task timestamps only, never
// from the shared activity log.
func (s *DashboardService) MemberDashboard(memberID uint64) (*dto.MemberDashboard, error) {
	now := time.Now()

	myTasks, err := s.taskRepo.ListByAssignee(memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	breakdown := breakdownOf(myTasks)

	var overdue []dto.OverdueTask
	for _, task := range myTasks {
		if task.Overdue(now) {
			overdue = append(overdue, dto.OverdueTask{
				ID:          task.ID,
				Title:       task.Title,
				Deadline:    task.Deadline,
				Priority:    task.Priority,
				DaysOverdue: ceilDays(now.Sub(task.Deadline)),
			})
		}
	}

	nextWeek := now.Add(7 * 24 * time.Hour)
	upcoming := make([]dto.UpcomingTask, 0)
	for _, task := range myTasks {
		if task.Status == models.TaskStatusCompleted {
			continue
		}
		if task.Deadline.Before(now) || task.Deadline.After(nextWeek) {
			continue
		}
		item := dto.UpcomingTask{
			ID:                task.ID,
			Title:             task.Title,
			Description:       task.Description,
			Deadline:          task.Deadline,
			Priority:          task.Priority,
			Status:            task.Status,
			DaysUntilDeadline: ceilDays(task.Deadline.Sub(now)),
		}
		if task.CreatedBy != nil {
			item.CreatedBy = task.CreatedBy.Name
		}
		upcoming = append(upcoming, item)
	}

	completions := completedByUpdatedAtDesc(myTasks)
	recentCompletions := make([]dto.RecentCompletion, 0, constants.RecentCompletionLimit)
	for _, task := range completions {
		if len(recentCompletions) == constants.RecentCompletionLimit {
			break
		}
		completion := dto.RecentCompletion{
			Task:        task.Title,
			CompletedAt: task.UpdatedAt,
		}
		if task.CreatedBy != nil {
			completion.CreatedBy = task.CreatedBy.Name
		}
		recentCompletions = append(recentCompletions, completion)
	}

	updated := updatedByUpdatedAtDesc(myTasks)
	recentActivities := make([]dto.MemberActivity, 0, constants.MemberActivityLimit)
	for _, task := range updated {
		if len(recentActivities) == constants.MemberActivityLimit {
			break
		}
		recentActivities = append(recentActivities, dto.MemberActivity{
			ID:     task.ID,
			Action: fmt.Sprintf("Updated %q to %s", task.Title, task.Status),
			Target: task.Title,
			Time:   task.UpdatedAt,
			Status: task.Status,
		})
	}

	weekStart := startOfWeek(now)
	weeklyTotal, weeklyCompleted := 0, 0
	for _, task := range myTasks {
		if task.CreatedAt.Before(weekStart) {
			continue
		}
		weeklyTotal++
		if task.Status == models.TaskStatusCompleted {
			weeklyCompleted++
		}
	}

	onTime := 0
	for _, task := range myTasks {
		if task.Status == models.TaskStatusCompleted && !task.UpdatedAt.After(task.Deadline) {
			onTime++
		}
	}

	return &dto.MemberDashboard{
		Stats: dto.MemberStats{
			AssignedTasks:   len(myTasks),
			PendingTasks:    breakdown.ByStatus.Pending,
			InProgressTasks: breakdown.ByStatus.InProgress,
			CompletedTasks:  breakdown.ByStatus.Completed,
			OverdueTasks:    len(overdue),
		},
		UpcomingTasks:     upcoming,
		RecentCompletions: recentCompletions,
		RecentActivities:  recentActivities,
		Progress: dto.MemberProgress{
			WeeklyProgress:        rate(weeklyCompleted, weeklyTotal),
			WeeklyCompleted:       weeklyCompleted,
			WeeklyTotal:           weeklyTotal,
			OverallCompletionRate: rate(breakdown.ByStatus.Completed, len(myTasks)),
			OnTimeCompletionRate:  rate(onTime, breakdown.ByStatus.Completed),
		},
		TaskBreakdown: breakdown,
		OverdueTasks:  overdue,
	}, nil
}

// activityType re-types a log entry for the client by substring match on
// the recorded action text.
func activityType(action string) string {
	lower := strings.ToLower(action)
	switch {
	case strings.Contains(lower, "completed"):
		return "task_completed"
	case strings.Contains(lower, "created"):
		return "task_created"
	case strings.Contains(lower, "member"):
		return "member_added"
	default:
		return "activity"
	}
}

func breakdownOf(tasks []models.Task) dto.TaskBreakdown {
	var b dto.TaskBreakdown
	for _, task := range tasks {
		switch task.Status {
		case models.TaskStatusPending:
			b.ByStatus.Pending++
		case models.TaskStatusInProgress:
			b.ByStatus.InProgress++
		case models.TaskStatusCompleted:
			b.ByStatus.Completed++
		}
		switch task.Priority {
		case models.TaskPriorityLow:
			b.ByPriority.Low++
		case models.TaskPriorityMedium:
			b.ByPriority.Medium++
		case models.TaskPriorityHigh:
			b.ByPriority.High++
		}
	}
	return b
}

// rate is a percentage rounded to the nearest integer, 0 when the
// denominator is 0.
func rate(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// avgCompletionDays averages the creation-to-completion span, in whole
// days rounded up per task, over tasks completed in the last 30 days.
// The mean is rounded to one decimal.
func avgCompletionDays(tasks []models.Task, now time.Time) float64 {
	cutoff := now.Add(-30 * 24 * time.Hour)

	totalDays, count := 0, 0
	for _, task := range tasks {
		if task.Status != models.TaskStatusCompleted || task.UpdatedAt.Before(cutoff) {
			continue
		}
		totalDays += ceilDays(task.UpdatedAt.Sub(task.CreatedAt))
		count++
	}

	if count == 0 {
		return 0
	}
	return math.Round(float64(totalDays)/float64(count)*10) / 10
}

func ceilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / 24))
}

// startOfWeek returns midnight of the current week's Sunday.
func startOfWeek(now time.Time) time.Time {
	start := now.AddDate(0, 0, -int(now.Weekday()))
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
}

func completedByUpdatedAtDesc(tasks []models.Task) []models.Task {
	completed := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Status == models.TaskStatusCompleted {
			completed = append(completed, task)
		}
	}
	sortByUpdatedAtDesc(completed)
	return completed
}

func updatedByUpdatedAtDesc(tasks []models.Task) []models.Task {
	updated := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.UpdatedAt.After(task.CreatedAt) {
			updated = append(updated, task)
		}
	}
	sortByUpdatedAtDesc(updated)
	return updated
}

func sortByUpdatedAtDesc(tasks []models.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].UpdatedAt.After(tasks[j].UpdatedAt)
	})
}
