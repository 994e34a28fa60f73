package gallery

import (
	"context"
	"database/sql"
	"time"

	"clubsite/internal/adapters/storage"
	domain "clubsite/internal/domain/gallery"
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

const imageColumns = `id, filename, caption, category, uploaded_at`

// Create inserts an image and returns the generated id.
// PRE: i has been validated; i.Category has been normalized
// POST: Row is persisted; returned id is the autoincrement key
func (s *SQLiteStore) Create(ctx context.Context, i domain.Image) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO gallery_image (filename, caption, category, uploaded_at) VALUES (?, ?, ?, ?)`,
		i.Filename, i.Caption, domain.NormalizeCategory(i.Category),
		i.UploadedAt.UTC().Format(timeLayout))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByID retrieves an image by id.
// PRE: id > 0
// POST: Returns the entity or sql.ErrNoRows when absent
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Image, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+imageColumns+` FROM gallery_image WHERE id = ?`, id)
	return scanImage(row)
}

// Delete removes an image by id.
// PRE: id > 0
// POST: Row with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM gallery_image WHERE id = ?`, id)
	return err
}

// List returns all images, most recently uploaded first.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Image, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+imageColumns+` FROM gallery_image ORDER BY uploaded_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanImages(rows)
}

// ListByCategory returns images in one category in store order.
func (s *SQLiteStore) ListByCategory(ctx context.Context, category string) ([]domain.Image, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+imageColumns+` FROM gallery_image WHERE category = ? ORDER BY id ASC`,
		domain.NormalizeCategory(category))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanImages(rows)
}

// Albums returns one entry per distinct category with its image count and
// the most recently uploaded filename as the cover.
func (s *SQLiteStore) Albums(ctx context.Context) ([]domain.Album, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT g.category,
		       COUNT(*),
		       (SELECT g2.filename FROM gallery_image g2
		        WHERE g2.category = g.category
		        ORDER BY g2.uploaded_at DESC, g2.id DESC LIMIT 1)
		FROM gallery_image g
		GROUP BY g.category
		ORDER BY g.category ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var albums []domain.Album
	for rows.Next() {
		var a domain.Album
		if err := rows.Scan(&a.Category, &a.Count, &a.Cover); err != nil {
			return nil, err
		}
		albums = append(albums, a)
	}
	return albums, rows.Err()
}

// Count returns the total number of images.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM gallery_image`).Scan(&n)
	return n, err
}

// scanner abstracts *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanImage(row scanner) (domain.Image, error) {
	var i domain.Image
	var uploadedAt string
	if err := row.Scan(&i.ID, &i.Filename, &i.Caption, &i.Category, &uploadedAt); err != nil {
		return domain.Image{}, err
	}
	t, err := time.Parse(timeLayout, uploadedAt)
	if err != nil {
		return domain.Image{}, err
	}
	i.UploadedAt = t
	return i, nil
}

func scanImages(rows *sql.Rows) ([]domain.Image, error) {
	var images []domain.Image
	for rows.Next() {
		i, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, i)
	}
	return images, rows.Err()
}
