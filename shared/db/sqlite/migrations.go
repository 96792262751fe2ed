package sqlite

import (
	"database/sql"
	"fmt"
)

// migration represents a single database migration
type migration struct {
	version int
	name    string
	up      string
}

// migrations is the ordered list of all database migrations
// Each migration should be idempotent and safe to run multiple times
var migrations = []migration{
	{
		version: 1,
		name:    "create_profiles_table",
		up: `
			CREATE TABLE IF NOT EXISTS profiles (
				id TEXT PRIMARY KEY,
				username TEXT NOT NULL,
				avatar_url TEXT,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			);
		`,
	},
	{
		version: 2,
		name:    "create_posts_table",
		up: `
			CREATE TABLE IF NOT EXISTS posts (
				id TEXT PRIMARY KEY,
				user_id TEXT REFERENCES profiles(id),
				body TEXT NOT NULL,
				is_anonymous INTEGER NOT NULL DEFAULT 0,
				created_at TIMESTAMP NOT NULL
			);

			CREATE INDEX IF NOT EXISTS idx_posts_created_at
			ON posts(created_at DESC);
		`,
	},
	{
		version: 3,
		name:    "create_reactions_table",
		up: `
			CREATE TABLE IF NOT EXISTS reactions (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				post_id TEXT NOT NULL REFERENCES posts(id),
				user_id TEXT NOT NULL,
				reaction TEXT NOT NULL CHECK (reaction IN ('F', 'Clown', 'Skull', 'Relatable')),
				created_at TIMESTAMP NOT NULL,
				UNIQUE (post_id, user_id, reaction)
			);

			CREATE INDEX IF NOT EXISTS idx_reactions_post_id
			ON reactions(post_id);
		`,
	},
	{
		version: 4,
		name:    "create_comments_table",
		up: `
			CREATE TABLE IF NOT EXISTS comments (
				id TEXT PRIMARY KEY,
				post_id TEXT NOT NULL REFERENCES posts(id),
				user_id TEXT REFERENCES profiles(id),
				body TEXT NOT NULL,
				is_reply_bot INTEGER NOT NULL DEFAULT 0,
				created_at TIMESTAMP NOT NULL
			);

			CREATE INDEX IF NOT EXISTS idx_comments_post_id
			ON comments(post_id);
		`,
	},
}

// RunMigrations executes all pending migrations
func RunMigrations(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	currentVersion := 0
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	// Run pending migrations
	for _, m := range migrations {
		if m.version <= currentVersion {
			continue // Already applied
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", m.version, err)
		}

		_, err = tx.Exec(m.up)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to execute migration %d (%s): %w", m.version, m.name, err)
		}

		_, err = tx.Exec(
			"INSERT INTO schema_migrations (version, name) VALUES (?, ?)",
			m.version,
			m.name,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.version, err)
		}
	}

	return nil
}
