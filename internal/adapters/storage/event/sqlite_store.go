package event

import (
	"context"
	"database/sql"
	"time"

	"clubsite/internal/adapters/storage"
	domain "clubsite/internal/domain/event"
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

const eventColumns = `id, title, description, date, time, poster, created_at`

// Create inserts an event and returns the generated id.
// PRE: e has been validated
// POST: Row is persisted; returned id is the autoincrement key
func (s *SQLiteStore) Create(ctx context.Context, e domain.Event) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO event (title, description, date, time, poster, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		e.Title, e.Description, e.Date.Format(domain.DateLayout), e.Time, e.Poster,
		e.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByID retrieves an event by id.
// PRE: id > 0
// POST: Returns the entity or sql.ErrNoRows when absent
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Event, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM event WHERE id = ?`, id)
	return scanEvent(row)
}

// Update overwrites all editable fields of an event.
// PRE: e.ID > 0, e has been validated
// POST: Row matches e; created_at is untouched
func (s *SQLiteStore) Update(ctx context.Context, e domain.Event) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE event SET title = ?, description = ?, date = ?, time = ?, poster = ? WHERE id = ?`,
		e.Title, e.Description, e.Date.Format(domain.DateLayout), e.Time, e.Poster, e.ID)
	return err
}

// Delete removes an event by id.
// PRE: id > 0
// POST: Row with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM event WHERE id = ?`, id)
	return err
}

// ListByDate returns all events ordered by date.
// PRE: none
// POST: Ascending order by default, descending when requested
func (s *SQLiteStore) ListByDate(ctx context.Context, descending bool) ([]domain.Event, error) {
	order := `ASC`
	if descending {
		order = `DESC`
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM event ORDER BY date `+order+`, id `+order)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

// ListUpcoming returns events dated on or after from's day, ascending by date.
// PRE: limit > 0
// POST: At most limit events, none dated before from's day
func (s *SQLiteStore) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]domain.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM event WHERE date >= ? ORDER BY date ASC, id ASC LIMIT ?`,
		from.Format(domain.DateLayout), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

// Count returns the total number of events.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM event`).Scan(&n)
	return n, err
}

// scanner abstracts *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (domain.Event, error) {
	var e domain.Event
	var date, createdAt string
	if err := row.Scan(&e.ID, &e.Title, &e.Description, &date, &e.Time, &e.Poster, &createdAt); err != nil {
		return domain.Event{}, err
	}
	d, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return domain.Event{}, err
	}
	c, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return domain.Event{}, err
	}
	e.Date = d
	e.CreatedAt = c
	return e, nil
}

func scanEvents(rows *sql.Rows) ([]domain.Event, error) {
	var events []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
