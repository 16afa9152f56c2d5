package services

import (
	"sync"
	"testing"
	"time"

	"github.com/sanchalak/sanchalak-api/internal/mailer"
	"github.com/sanchalak/sanchalak-api/internal/models"
	"github.com/sanchalak/sanchalak-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type captureMailer struct {
	mu       sync.Mutex
	messages []mailer.Message
}

func (m *captureMailer) SendMail(msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *captureMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}

// TaskLifecycleTestSuite walks the full flow across the services
type TaskLifecycleTestSuite struct {
	suite.Suite
	db        *gorm.DB
	mail      *captureMailer
	team      *TeamService
	tasks     *TaskService
	dashboard *DashboardService
}

// SetupTest runs before each test
func (suite *TaskLifecycleTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.User{}, &models.Task{}, &models.ActivityLog{})
	suite.Require().NoError(err)

	userRepo := repository.NewUserRepository(suite.db)
	taskRepo := repository.NewTaskRepository(suite.db)
	activityRepo := repository.NewActivityLogRepository(suite.db)

	suite.mail = &captureMailer{}
	suite.team = NewTeamService(userRepo, activityRepo, suite.mail)
	suite.tasks = NewTaskService(taskRepo, userRepo, activityRepo, suite.mail)
	suite.dashboard = NewDashboardService(taskRepo, userRepo, activityRepo)
}

// TearDownTest runs after each test
func (suite *TaskLifecycleTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskLifecycleTestSuite) createLeader(email string) *models.User {
	user := &models.User{
		Name:         "Leader",
		Email:        email,
		PasswordHash: "hashedpassword",
		Role:         models.RoleLeader,
	}
	suite.db.Create(user)
	return user
}

// TestFullLifecycle walks add member, create task, authorized
// transitions and the resulting dashboard
func (suite *TaskLifecycleTestSuite) TestFullLifecycle() {
	leader := suite.createLeader("leader@example.com")

	member, err := suite.team.AddMember(leader, AddMemberInput{
		Name:  "Asha",
		Email: "asha@example.com",
		Role:  models.RoleMember,
	})
	suite.Require().NoError(err)

	team, err := suite.team.ListTeamMembers(leader.ID)
	suite.Require().NoError(err)
	suite.Require().Len(team, 1)
	assert.Equal(suite.T(), member.ID, team[0].ID)

	task, err := suite.tasks.CreateTask(leader, CreateTaskInput{
		Title:        "Prepare launch",
		Description:  "Everything for Friday",
		Deadline:     time.Now().Add(72 * time.Hour),
		Priority:     "High",
		AssignedToID: member.ID,
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.TaskStatusPending, task.Status)
	assert.Equal(suite.T(), leader.ID, task.CreatedByID)

	// Someone else may not move the task
	stranger := suite.createLeader("stranger@example.com")
	_, err = suite.tasks.UpdateStatus(stranger, task.ID, "Completed")
	assert.ErrorIs(suite.T(), err, ErrNotTaskAssignee)

	// The assignee walks the machine
	_, err = suite.tasks.UpdateStatus(member, task.ID, "In-Progress")
	suite.Require().NoError(err)
	updated, err := suite.tasks.UpdateStatus(member, task.ID, "Completed")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.TaskStatusCompleted, updated.Status)

	dashboard, err := suite.dashboard.LeaderDashboard(leader.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), 100, dashboard.Performance.CompletionRate)
	assert.Equal(suite.T(), 1, dashboard.Stats.CompletedTasks)

	// Welcome, assignment and completion mails
	assert.Eventually(suite.T(), func() bool {
		return suite.mail.count() == 3
	}, time.Second, 10*time.Millisecond)
}

// TestAuditTrail records exactly one entry per mutation
func (suite *TaskLifecycleTestSuite) TestAuditTrail() {
	leader := suite.createLeader("leader@example.com")

	member, err := suite.team.AddMember(leader, AddMemberInput{
		Name: "Asha", Email: "asha@example.com", Role: models.RoleMember,
	})
	suite.Require().NoError(err)

	task, err := suite.tasks.CreateTask(leader, CreateTaskInput{
		Title:        "Audit me",
		Description:  "desc",
		Deadline:     time.Now().Add(24 * time.Hour),
		AssignedToID: member.ID,
	})
	suite.Require().NoError(err)

	_, err = suite.tasks.UpdateStatus(member, task.ID, "In-Progress")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.tasks.DeleteTask(leader, task.ID))
	suite.Require().NoError(suite.team.RemoveMember(leader, member.ID))

	var logs []models.ActivityLog
	suite.db.Order("id ASC").Find(&logs)
	suite.Require().Len(logs, 5)

	actions := make([]string, 0, len(logs))
	for _, entry := range logs {
		actions = append(actions, entry.Action)
	}
	assert.Equal(suite.T(), []string{
		"Added a new team member",
		"Created a new task",
		"Updated a task",
		"Deleted a task",
		"Removed a team member",
	}, actions)
}

// TestRemovedAssigneeLeavesTask preserves tasks when their assignee is
// removed from the directory
func (suite *TaskLifecycleTestSuite) TestRemovedAssigneeLeavesTask() {
	leader := suite.createLeader("leader@example.com")

	member, err := suite.team.AddMember(leader, AddMemberInput{
		Name: "Asha", Email: "asha@example.com", Role: models.RoleMember,
	})
	suite.Require().NoError(err)

	task, err := suite.tasks.CreateTask(leader, CreateTaskInput{
		Title:        "Orphaned",
		Description:  "desc",
		Deadline:     time.Now().Add(24 * time.Hour),
		AssignedToID: member.ID,
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.team.RemoveMember(leader, member.ID))

	all, err := suite.tasks.ListAllTasks()
	suite.Require().NoError(err)
	suite.Require().Len(all, 1)
	assert.Equal(suite.T(), task.ID, all[0].ID)
	assert.Nil(suite.T(), all[0].AssignedTo)
}

func TestTaskLifecycleTestSuite(t *testing.T) {
	suite.Run(t, new(TaskLifecycleTestSuite))
}
