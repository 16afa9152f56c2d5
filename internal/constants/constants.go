package constants

// Context keys shared between middleware and handlers
const (
	ContextKeyUserID = "user_id"
	ContextKeyUser   = "current_user"
)

// Auth
const (
	MinPasswordLength = 8

	// GeneratedPasswordBytes is the entropy of passwords issued to
	// members added by a leader (hex-encoded, so twice as many chars).
	GeneratedPasswordBytes = 6
)

// Dashboard
const (
	RecentActivityLimit   = 10
	RecentCompletionLimit = 5
	MemberActivityLimit   = 5
	TeamEngagementCap     = 98
)
