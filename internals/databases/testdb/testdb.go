// file: internals/databases/testdb/testdb.go
//
// In-memory SQLite untuk unit test. Skema ditulis manual karena DDL produksi
// memakai default gen_random_uuid() (Postgres-only); ID di test diisi lewat
// hook BeforeCreate di model.
package testdb

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var schema = []string{
	`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		user_name TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		google_id TEXT,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE token_blacklist (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		token TEXT NOT NULL UNIQUE,
		expired_at DATETIME,
		created_at DATETIME,
		deleted_at DATETIME
	)`,
	`CREATE TABLE user_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		bio TEXT,
		avatar_key TEXT NOT NULL DEFAULT '8bit_default.png',
		profile_links TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE quizzes (
		quiz_id TEXT PRIMARY KEY,
		quiz_owner_user_id TEXT NOT NULL,
		quiz_title TEXT NOT NULL,
		quiz_description TEXT,
		quiz_tags TEXT,
		quiz_created_at DATETIME NOT NULL,
		quiz_updated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE quiz_questions (
		quiz_question_id TEXT PRIMARY KEY,
		quiz_question_quiz_id TEXT NOT NULL,
		quiz_question_text TEXT NOT NULL,
		quiz_question_correct_option_index INTEGER NOT NULL,
		quiz_question_position INTEGER NOT NULL DEFAULT 0,
		quiz_question_created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE quiz_answer_options (
		quiz_answer_option_id TEXT PRIMARY KEY,
		quiz_answer_option_question_id TEXT NOT NULL,
		quiz_answer_option_text TEXT NOT NULL,
		quiz_answer_option_position INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE attempts (
		attempt_id TEXT PRIMARY KEY,
		attempt_user_id TEXT NOT NULL,
		attempt_quiz_id TEXT NOT NULL,
		attempt_score INTEGER NOT NULL,
		attempt_total INTEGER NOT NULL,
		attempt_created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE attempt_answers (
		attempt_answer_id TEXT PRIMARY KEY,
		attempt_answer_attempt_id TEXT NOT NULL,
		attempt_answer_question_id TEXT NOT NULL,
		attempt_answer_selected_option_index INTEGER NOT NULL,
		attempt_answer_is_correct BOOLEAN NOT NULL,
		attempt_answer_position INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE follows (
		follow_id TEXT PRIMARY KEY,
		follow_follower_user_id TEXT NOT NULL,
		follow_following_user_id TEXT NOT NULL,
		follow_created_at DATETIME NOT NULL,
		CONSTRAINT uq_follows_follower_following UNIQUE (follow_follower_user_id, follow_following_user_id)
	)`,
	`CREATE TABLE likes (
		like_id TEXT PRIMARY KEY,
		like_user_id TEXT NOT NULL,
		like_quiz_id TEXT NOT NULL,
		like_created_at DATETIME NOT NULL,
		CONSTRAINT uq_likes_user_quiz UNIQUE (like_user_id, like_quiz_id)
	)`,
}

// Open membuka database in-memory baru, satu per test.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
