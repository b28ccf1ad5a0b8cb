package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"folio/internal/db"
	"folio/internal/model"
	"folio/pkg/snowflake"

	_ "modernc.org/sqlite"
)

// snowflakeOnce guards the process-wide snowflake node across parallel tests.
var snowflakeOnce sync.Once

// NewTestDB opens a fresh in-memory SQLite database and runs all migrations.
// Shared-cache mode keeps the database alive across connections; the unique
// name isolates parallel tests from each other.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			// t.Fatalf is unusable inside sync.Once, so panic
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	dbName := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dbName)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

// SeedUser inserts a test user and returns its ID.
func SeedUser(t *testing.T, db *sql.DB, username string) int64 {
	t.Helper()

	id := snowflake.NextID()
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO users (id, username, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, username, "test-hash", now, now,
	)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	return id
}

// SeedFolder inserts a test folder owned by userID and returns its ID.
func SeedFolder(t *testing.T, db *sql.DB, userID int64, name string) int64 {
	t.Helper()

	id := snowflake.NextID()
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO folders (id, user_id, name, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, userID, name, now, now,
	)
	if err != nil {
		t.Fatalf("failed to seed folder: %v", err)
	}

	return id
}

// SeedNote inserts a test note and returns its ID. Zero-value fields get
// sensible defaults.
func SeedNote(t *testing.T, db *sql.DB, note model.Note) int64 {
	t.Helper()

	if note.ID == 0 {
		note.ID = snowflake.NextID()
	}
	if note.Title == "" {
		note.Title = "Untitled"
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)

	var folderID interface{}
	if note.FolderID != nil {
		folderID = *note.FolderID
	}
	var content interface{}
	if note.Content != nil {
		content = *note.Content
	}

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO notes (id, user_id, folder_id, title, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		note.ID, note.UserID, folderID, note.Title, content, now, now,
	)
	if err != nil {
		t.Fatalf("failed to seed note: %v", err)
	}

	return note.ID
}
