package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sanchalak/sanchalak-api/internal/constants"
	"github.com/sanchalak/sanchalak-api/internal/mailer"
	"github.com/sanchalak/sanchalak-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// recordingMailer captures outbound messages instead of delivering them.
// Send dispatches on a goroutine, so reads go through the mutex.
type recordingMailer struct {
	mu       sync.Mutex
	messages []mailer.Message
}

func (m *recordingMailer) SendMail(msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *recordingMailer) sent() []mailer.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]mailer.Message, len(m.messages))
	copy(out, m.messages)
	return out
}

func newTestDB(t interface {
	Fatalf(format string, args ...interface{})
}) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Task{}, &models.ActivityLog{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// createAuthContext builds a request context with the principal already
// resolved, as RequireAuth would leave it.
func createAuthContext(method, url string, body []byte, user *models.User) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	if user != nil {
		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyUser, user)
	}

	return c, w
}
