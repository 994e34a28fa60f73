package contact

import (
	"context"
	"database/sql"
	"time"

	"clubsite/internal/adapters/storage"
	domain "clubsite/internal/domain/contact"
)

const timeLayout = time.RFC3339

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Create inserts a message and returns the generated id.
// PRE: m has been validated
// POST: Row is persisted; returned id is the autoincrement key
func (s *SQLiteStore) Create(ctx context.Context, m domain.Message) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_message (name, email, message, created_at) VALUES (?, ?, ?, ?)`,
		m.Name, m.Email, m.Message, m.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns all messages, most recent first.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, message, created_at FROM contact_message ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

// Count returns the total number of messages.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_message`).Scan(&n)
	return n, err
}

func scanMessages(rows *sql.Rows) ([]domain.Message, error) {
	var list []domain.Message
	for rows.Next() {
		var m domain.Message
		var createdAt string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &createdAt); err != nil {
			return nil, err
		}
		t, err := time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, err
		}
		m.CreatedAt = t
		list = append(list, m)
	}
	return list, rows.Err()
}
