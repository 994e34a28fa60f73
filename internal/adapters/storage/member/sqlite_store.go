package member

import (
	"context"
	"database/sql"
	"time"

	"clubsite/internal/adapters/storage"
	domain "clubsite/internal/domain/member"
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

const memberColumns = `id, name, role, bio, photo, joined_at`

// Create inserts a member and returns the generated id.
// PRE: m has been validated
// POST: Row is persisted; returned id is the autoincrement key
func (s *SQLiteStore) Create(ctx context.Context, m domain.Member) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO member (name, role, bio, photo, joined_at) VALUES (?, ?, ?, ?, ?)`,
		m.Name, m.Role, m.Bio, m.Photo, m.JoinedAt.UTC().Format(timeLayout))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByID retrieves a member by id.
// PRE: id > 0
// POST: Returns the entity or sql.ErrNoRows when absent
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Member, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM member WHERE id = ?`, id)
	return scanMember(row)
}

// Delete removes a member by id.
// PRE: id > 0
// POST: Row with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM member WHERE id = ?`, id)
	return err
}

// List returns all members, most recently joined first.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+memberColumns+` FROM member ORDER BY joined_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMembers(rows)
}

// Count returns the total number of members.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM member`).Scan(&n)
	return n, err
}

// scanner abstracts *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMember(row scanner) (domain.Member, error) {
	var m domain.Member
	var joinedAt string
	if err := row.Scan(&m.ID, &m.Name, &m.Role, &m.Bio, &m.Photo, &joinedAt); err != nil {
		return domain.Member{}, err
	}
	t, err := time.Parse(timeLayout, joinedAt)
	if err != nil {
		return domain.Member{}, err
	}
	m.JoinedAt = t
	return m, nil
}

func scanMembers(rows *sql.Rows) ([]domain.Member, error) {
	var members []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
