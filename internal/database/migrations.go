package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Task indexes for dashboard and listing queries
		{"tasks", "idx_tasks_assigned_to_id", "assigned_to_id"},
		{"tasks", "idx_tasks_created_by_id", "created_by_id"},
		{"tasks", "idx_tasks_status", "status"},
		{"tasks", "idx_tasks_deadline", "deadline"},

		// User directory lookups
		{"users", "idx_users_team_leader_id", "team_leader_id"},
		{"users", "idx_users_role", "role"},

		// Activity log feed is always read newest-first per actor set
		{"activity_logs", "idx_activity_logs_user_id", "user_id"},
		{"activity_logs", "idx_activity_logs_timestamp", "timestamp"},
	}

	for _, idx := range indexes {
		// Check if index already exists
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			fmt.Printf("Index %s already exists, skipping\n", idx.name)
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		fmt.Printf("Created index %s on %s(%s)\n", idx.name, idx.table, idx.columns)
	}

	return nil
}
