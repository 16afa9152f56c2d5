package mailer

import (
	"fmt"

	"github.com/sanchalak/sanchalak-api/internal/models"
)

// WelcomeMessage carries the one-time credentials for a freshly added
// team member. The password is never stored or returned anywhere else.
func WelcomeMessage(member *models.User, leaderName, password string) Message {
	return Message{
		To:      member.Email,
		Subject: "You have been added to a team",
		HTML: fmt.Sprintf(`
      <h3>Welcome to the team!</h3>
      <p>You were added by <strong>%s</strong> as a <strong>%s</strong>.</p>
      <p>Here are your login credentials:</p>
      <ul>
        <li><strong>Email:</strong> %s</li>
        <li><strong>Password:</strong> %s</li>
      </ul>
      <p>Please log in and update your password after logging in.</p>
    `, leaderName, member.Role, member.Email, password),
	}
}

// AssignmentMessage notifies an assignee about a newly created task.
func AssignmentMessage(assignee *models.User, leaderName string, task *models.Task) Message {
	return Message{
		To:      assignee.Email,
		Subject: "New Task Assigned",
		HTML: fmt.Sprintf(`
      <h3>Hello %s,</h3>
      <p>You have been assigned a new task by your team leader <strong>%s</strong>.</p>
      <h4>Task Details:</h4>
      <ul>
        <li><strong>Title:</strong> %s</li>
        <li><strong>Description:</strong> %s</li>
        <li><strong>Deadline:</strong> %s</li>
        <li><strong>Priority:</strong> %s</li>
      </ul>
      <p>Please log in to your dashboard to view and manage this task.</p>
    `, assignee.Name, leaderName, task.Title, task.Description,
			task.Deadline.Format("1/2/2006"), task.Priority),
	}
}

// CompletionMessage tells the task's creator that the assignee marked it
// completed.
func CompletionMessage(creator *models.User, memberName string, task *models.Task) Message {
	return Message{
		To:      creator.Email,
		Subject: fmt.Sprintf("Task Completed: %s", task.Title),
		HTML: fmt.Sprintf(`
      <h3>Hello %s,</h3>
      <p>Your team member <strong>%s</strong> has marked the task <strong>%s</strong> as <span style="color:green;"><strong>Completed</strong></span>.</p>
      <h4>Task Summary:</h4>
      <ul>
        <li><strong>Title:</strong> %s</li>
        <li><strong>Description:</strong> %s</li>
        <li><strong>Deadline:</strong> %s</li>
      </ul>
      <p>Log in to the dashboard to review the task.</p>
    `, creator.Name, memberName, task.Title, task.Title, task.Description,
			task.Deadline.Format("1/2/2006")),
	}
}
