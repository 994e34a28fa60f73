package announcement

import (
	"context"
	"database/sql"
	"time"

	"clubsite/internal/adapters/storage"
	domain "clubsite/internal/domain/announcement"
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

// Create inserts an announcement and returns the generated id.
// PRE: a has been validated
// POST: Row is persisted; returned id is the autoincrement key
func (s *SQLiteStore) Create(ctx context.Context, a domain.Announcement) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO announcement (title, content, created_at) VALUES (?, ?, ?)`,
		a.Title, a.Content, a.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListRecent returns announcements most recent first.
// PRE: none
// POST: At most limit rows when limit > 0, all rows otherwise
func (s *SQLiteStore) ListRecent(ctx context.Context, limit int) ([]domain.Announcement, error) {
	query := `SELECT id, title, content, created_at FROM announcement ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAnnouncements(rows)
}

// Count returns the total number of announcements.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM announcement`).Scan(&n)
	return n, err
}

func scanAnnouncements(rows *sql.Rows) ([]domain.Announcement, error) {
	var list []domain.Announcement
	for rows.Next() {
		var a domain.Announcement
		var createdAt string
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &createdAt); err != nil {
			return nil, err
		}
		t, err := time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, err
		}
		a.CreatedAt = t
		list = append(list, a)
	}
	return list, rows.Err()
}
