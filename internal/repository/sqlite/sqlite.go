package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/domain"
)

// DB wraps a SQLite database handle and hands out the repositories built
// on top of it.
type DB struct {
	SqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Foreign key enforcement is off by default in SQLite; the answers
	// table depends on it.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// Set a reasonable connection pool for SQLite.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Close closes the underlying database handle.
func (db *DB) Close() error {
	return db.SqlDB.Close()
}

// Users returns the user repository backed by this database.
func (db *DB) Users() domain.UserRepository {
	return NewUserRepository(db)
}

// Questions returns the question repository backed by this database.
func (db *DB) Questions() domain.QuestionRepository {
	return NewQuestionRepository(db)
}

// Answers returns the answer repository backed by this database.
func (db *DB) Answers() domain.AnswerRepository {
	return NewAnswerRepository(db)
}

// Inquiries returns the inquiry repository backed by this database.
func (db *DB) Inquiries() domain.InquiryRepository {
	return NewInquiryRepository(db)
}
