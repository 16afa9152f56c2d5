package services

import (
	"testing"
	"time"

	"github.com/sanchalak/sanchalak-api/internal/models"
	"github.com/sanchalak/sanchalak-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DashboardServiceTestSuite defines the test suite for DashboardService
type DashboardServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *DashboardService
}

// SetupTest runs before each test
func (suite *DashboardServiceTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.User{}, &models.Task{}, &models.ActivityLog{})
	suite.Require().NoError(err)

	suite.service = NewDashboardService(
		repository.NewTaskRepository(suite.db),
		repository.NewUserRepository(suite.db),
		repository.NewActivityLogRepository(suite.db),
	)
}

// TearDownTest runs after each test
func (suite *DashboardServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *DashboardServiceTestSuite) createLeader(email string) *models.User {
	user := &models.User{
		Name:         "Leader",
		Email:        email,
		PasswordHash: "hashedpassword",
		Role:         models.RoleLeader,
	}
	suite.db.Create(user)
	return user
}

func (suite *DashboardServiceTestSuite) createMember(email string, leaderID uint64) *models.User {
	user := &models.User{
		Name:         "Member",
		Email:        email,
		PasswordHash: "hashedpassword",
		Role:         models.RoleMember,
		TeamLeaderID: &leaderID,
	}
	suite.db.Create(user)
	return user
}

func (suite *DashboardServiceTestSuite) createTask(leaderID, assigneeID uint64, status models.TaskStatus, priority models.TaskPriority, deadline time.Time) *models.Task {
	task := &models.Task{
		Title:        "Task",
		Description:  "desc",
		Deadline:     deadline,
		Priority:     priority,
		Status:       status,
		AssignedToID: assigneeID,
		CreatedByID:  leaderID,
	}
	suite.db.Create(task)
	return task
}

// setTimestamps rewrites the managed timestamps directly, bypassing
// gorm's auto-update
func (suite *DashboardServiceTestSuite) setTimestamps(task *models.Task, createdAt, updatedAt time.Time) {
	suite.db.Model(task).UpdateColumns(map[string]interface{}{
		"created_at": createdAt,
		"updated_at": updatedAt,
	})
}

// TestLeaderDashboard_EmptyState has no division-by-zero anywhere
func (suite *DashboardServiceTestSuite) TestLeaderDashboard_EmptyState() {
	leader := suite.createLeader("leader@example.com")

	dashboard, err := suite.service.LeaderDashboard(leader.ID)
	suite.Require().NoError(err)

	assert.Zero(suite.T(), dashboard.Stats.TotalMembers)
	assert.Zero(suite.T(), dashboard.Performance.CompletionRate)
	assert.Zero(suite.T(), dashboard.Performance.AvgCompletionDays)
	assert.Zero(suite.T(), dashboard.Performance.TeamEngagement)
	assert.Empty(suite.T(), dashboard.RecentActivities)
}

// TestLeaderDashboard_CompletionRate is round(100 * completed / total)
func (suite *DashboardServiceTestSuite) TestLeaderDashboard_CompletionRate() {
	leader := suite.createLeader("leader@example.com")
	member := suite.createMember("member@example.com", leader.ID)

	future := time.Now().Add(72 * time.Hour)
	suite.createTask(leader.ID, member.ID, models.TaskStatusCompleted, models.TaskPriorityHigh, future)
	suite.createTask(leader.ID, member.ID, models.TaskStatusCompleted, models.TaskPriorityLow, future)
	suite.createTask(leader.ID, member.ID, models.TaskStatusPending, models.TaskPriorityMedium, future)

	dashboard, err := suite.service.LeaderDashboard(leader.ID)
	suite.Require().NoError(err)

	// 2 of 3 -> 66.67 -> 67
	assert.Equal(suite.T(), 67, dashboard.Performance.CompletionRate)
	assert.Equal(suite.T(), 2, dashboard.Stats.CompletedTasks)
	assert.Equal(suite.T(), 1, dashboard.Stats.ActiveTasks)
	assert.Equal(suite.T(), 1, dashboard.TaskBreakdown.ByPriority.High)
	assert.Equal(suite.T(), 1, dashboard.TaskBreakdown.ByPriority.Medium)
	assert.Equal(suite.T(), 1, dashboard.TaskBreakdown.ByPriority.Low)
}

// TestLeaderDashboard_OverdueExcludesCompleted counts only unfinished
// tasks past their deadline
func (suite *DashboardServiceTestSuite) TestLeaderDashboard_OverdueExcludesCompleted() {
	leader := suite.createLeader("leader@example.com")
	member := suite.createMember("member@example.com", leader.ID)

	past := time.Now().Add(-48 * time.Hour)
	suite.createTask(leader.ID, member.ID, models.TaskStatusPending, models.TaskPriorityMedium, past)
	suite.createTask(leader.ID, member.ID, models.TaskStatusInProgress, models.TaskPriorityMedium, past)
	suite.createTask(leader.ID, member.ID, models.TaskStatusCompleted, models.TaskPriorityMedium, past)

	dashboard, err := suite.service.LeaderDashboard(leader.ID)
	suite.Require().NoError(err)

	assert.EqualValues(suite.T(), 2, dashboard.Stats.OverdueTasks)
}

// TestLeaderDashboard_AvgCompletionDays averages ceil-day spans of
// tasks completed in the last 30 days
func (suite *DashboardServiceTestSuite) TestLeaderDashboard_AvgCompletionDays() {
	leader := suite.createLeader("leader@example.com")
	member := suite.createMember("member@example.com", leader.ID)

	now := time.Now()
	task := suite.createTask(leader.ID, member.ID, models.TaskStatusCompleted, models.TaskPriorityMedium, now)
	suite.setTimestamps(task, now.Add(-72*time.Hour), now.Add(-24*time.Hour))

	old := suite.createTask(leader.ID, member.ID, models.TaskStatusCompleted, models.TaskPriorityMedium, now)
	suite.setTimestamps(old, now.Add(-100*24*time.Hour), now.Add(-40*24*time.Hour))

	dashboard, err := suite.service.LeaderDashboard(leader.ID)
	suite.Require().NoError(err)

	// Only the recent completion counts: 48h span -> 2 days
	assert.Equal(suite.T(), 2.0, dashboard.Performance.AvgCompletionDays)
}

// TestLeaderDashboard_TeamEngagement is the bounded activity heuristic
func (suite *DashboardServiceTestSuite) TestLeaderDashboard_TeamEngagement() {
	leader := suite.createLeader("leader@example.com")
	member := suite.createMember("member@example.com", leader.ID)

	for i := 0; i < 3; i++ {
		suite.db.Create(&models.ActivityLog{
			UserID: member.ID, Role: models.ActivityRoleMember,
			Action: "Updated a task", Target: "Task",
			Timestamp: time.Now().Add(-time.Hour),
		})
	}

	dashboard, err := suite.service.LeaderDashboard(leader.ID)
	suite.Require().NoError(err)

	// round(3 / (1+1) * 20) = 30
	assert.Equal(suite.T(), 30, dashboard.Performance.TeamEngagement)
}

// TestLeaderDashboard_TeamEngagementCapped never exceeds 98
func (suite *DashboardServiceTestSuite) TestLeaderDashboard_TeamEngagementCapped() {
	leader := suite.createLeader("leader@example.com")
	member := suite.createMember("member@example.com", leader.ID)

	for i := 0; i < 50; i++ {
		suite.db.Create(&models.ActivityLog{
			UserID: leader.ID, Role: models.ActivityRoleLeader,
			Action: "Created a new task", Target: "Task",
			Timestamp: time.Now().Add(-time.Hour),
		})
	}
	_ = member

	dashboard, err := suite.service.LeaderDashboard(leader.ID)
	suite.Require().NoError(err)

	assert.Equal(suite.T(), 98, dashboard.Performance.TeamEngagement)
}

// TestLeaderDashboard_RecentActivityTypes re-types feed entries from
// the action text
func (suite *DashboardServiceTestSuite) TestLeaderDashboard_RecentActivityTypes() {
	leader := suite.createLeader("leader@example.com")
	member := suite.createMember("member@example.com", leader.ID)

	entries := []struct {
		action string
		want   string
	}{
		{"Updated a task", "activity"},
		{"Added a new team member", "member_added"},
		{"Created a new task", "task_created"},
		{`Task marked Completed`, "task_completed"},
	}
	for i, e := range entries {
		suite.db.Create(&models.ActivityLog{
			UserID: member.ID, Role: models.ActivityRoleMember,
			Action: e.action, Target: "Task",
			Timestamp: time.Now().Add(time.Duration(i) * time.Minute),
		})
	}

	dashboard, err := suite.service.LeaderDashboard(leader.ID)
	suite.Require().NoError(err)

	suite.Require().Len(dashboard.RecentActivities, 4)
	// Newest first
	assert.Equal(suite.T(), "task_completed", dashboard.RecentActivities[0].Type)
	assert.Equal(suite.T(), "task_created", dashboard.RecentActivities[1].Type)
	assert.Equal(suite.T(), "member_added", dashboard.RecentActivities[2].Type)
	assert.Equal(suite.T(), "activity", dashboard.RecentActivities[3].Type)
}

// TestMemberDashboard_Stats counts the member's tasks by status
func (suite *DashboardServiceTestSuite) TestMemberDashboard_Stats() {
	leader := suite.createLeader("leader@example.com")
	member := suite.createMember("member@example.com", leader.ID)
	other := suite.createMember("other@example.com", leader.ID)

	future := time.Now().Add(72 * time.Hour)
	suite.createTask(leader.ID, member.ID, models.TaskStatusPending, models.TaskPriorityMedium, future)
	suite.createTask(leader.ID, member.ID, models.TaskStatusInProgress, models.TaskPriorityMedium, future)
	suite.createTask(leader.ID, member.ID, models.TaskStatusCompleted, models.TaskPriorityMedium, future)
	suite.createTask(leader.ID, other.ID, models.TaskStatusPending, models.TaskPriorityMedium, future)

	dashboard, err := suite.service.MemberDashboard(member.ID)
	suite.Require().NoError(err)

	assert.Equal(suite.T(), 3, dashboard.Stats.AssignedTasks)
	assert.Equal(suite.T(), 1, dashboard.Stats.PendingTasks)
	assert.Equal(suite.T(), 1, dashboard.Stats.InProgressTasks)
	assert.Equal(suite.T(), 1, dashboard.Stats.CompletedTasks)
}

// TestMemberDashboard_Overdue becomes non-overdue the instant a task
// completes, even with a past deadline
func (suite *DashboardServiceTestSuite) TestMemberDashboard_Overdue() {
	leader := suite.createLeader("leader@example.com")
	member := suite.createMember("member@example.com", leader.ID)

	past := time.Now().Add(-23 * time.Hour)
	late := suite.createTask(leader.ID, member.ID, models.TaskStatusInProgress, models.TaskPriorityHigh, past)
	suite.createTask(leader.ID, member.ID, models.TaskStatusCompleted, models.TaskPriorityHigh, past)

	dashboard, err := suite.service.MemberDashboard(member.ID)
	suite.Require().NoError(err)

	suite.Require().Len(dashboard.OverdueTasks, 1)
	assert.Equal(suite.T(), late.ID, dashboard.OverdueTasks[0].ID)
	assert.Equal(suite.T(), 1, dashboard.OverdueTasks[0].DaysOverdue)
	assert.Equal(suite.T(), 1, dashboard.Stats.OverdueTasks)
}

// TestMemberDashboard_UpcomingTasks annotates tasks due in the next
// seven days
func (suite *DashboardServiceTestSuite) TestMemberDashboard_UpcomingTasks() {
	leader := suite.createLeader("leader@example.com")
	member := suite.createMember("member@example.com", leader.ID)

	soon := time.Now().Add(60 * time.Hour)
	far := time.Now().Add(20 * 24 * time.Hour)
	suite.createTask(leader.ID, member.ID, models.TaskStatusPending, models.TaskPriorityHigh, soon)
	suite.createTask(leader.ID, member.ID, models.TaskStatusPending, models.TaskPriorityLow, far)
	suite.createTask(leader.ID, member.ID, models.TaskStatusCompleted, models.TaskPriorityHigh, soon)

	dashboard, err := suite.service.MemberDashboard(member.ID)
	suite.Require().NoError(err)

	suite.Require().Len(dashboard.UpcomingTasks, 1)
	assert.Equal(suite.T(), 3, dashboard.UpcomingTasks[0].DaysUntilDeadline)
}

// TestMemberDashboard_OnTimeCompletionRate compares completion time
// against the deadline
func (suite *DashboardServiceTestSuite) TestMemberDashboard_OnTimeCompletionRate() {
	leader := suite.createLeader("leader@example.com")
	member := suite.createMember("member@example.com", leader.ID)

	now := time.Now()
	onTime := suite.createTask(leader.ID, member.ID, models.TaskStatusCompleted, models.TaskPriorityMedium, now.Add(24*time.Hour))
	suite.setTimestamps(onTime, now.Add(-48*time.Hour), now.Add(-time.Hour))

	late := suite.createTask(leader.ID, member.ID, models.TaskStatusCompleted, models.TaskPriorityMedium, now.Add(-48*time.Hour))
	suite.setTimestamps(late, now.Add(-72*time.Hour), now.Add(-time.Hour))

	dashboard, err := suite.service.MemberDashboard(member.ID)
	suite.Require().NoError(err)

	assert.Equal(suite.T(), 50, dashboard.Progress.OnTimeCompletionRate)
}

// TestMemberDashboard_RecentActivitiesFromOwnTasks derives the feed
// from task timestamps only
func (suite *DashboardServiceTestSuite) TestMemberDashboard_RecentActivitiesFromOwnTasks() {
	leader := suite.createLeader("leader@example.com")
	member := suite.createMember("member@example.com", leader.ID)

	now := time.Now()
	moved := suite.createTask(leader.ID, member.ID, models.TaskStatusInProgress, models.TaskPriorityMedium, now.Add(24*time.Hour))
	suite.setTimestamps(moved, now.Add(-48*time.Hour), now.Add(-time.Hour))

	untouched := suite.createTask(leader.ID, member.ID, models.TaskStatusPending, models.TaskPriorityMedium, now.Add(24*time.Hour))
	suite.setTimestamps(untouched, now.Add(-time.Hour), now.Add(-time.Hour))

	// Shared-log noise must not leak into the member feed
	suite.db.Create(&models.ActivityLog{
		UserID: leader.ID, Role: models.ActivityRoleLeader,
		Action: "Added a new team member", Target: "Member: X",
		Timestamp: now,
	})

	dashboard, err := suite.service.MemberDashboard(member.ID)
	suite.Require().NoError(err)

	suite.Require().Len(dashboard.RecentActivities, 1)
	assert.Equal(suite.T(), moved.ID, dashboard.RecentActivities[0].ID)
	assert.Contains(suite.T(), dashboard.RecentActivities[0].Action, "In-Progress")
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
