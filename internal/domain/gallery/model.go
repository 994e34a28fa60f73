package gallery

import (
	"errors"
	"strings"
	"time"
)

// DefaultCategory groups images that were uploaded without a category.
const DefaultCategory = "uncategorized"

// ErrEmptyFilename is returned when an image has no stored filename.
var ErrEmptyFilename = errors.New("gallery image filename cannot be empty")

// Image is one uploaded gallery file. Category is a free-text grouping key;
// albums are derived from distinct category values at query time, they are
// not stored entities.
type Image struct {
	ID         int64
	Filename   string
	Caption    string
	Category   string
	UploadedAt time.Time
}

// Validate checks if the Image has valid data.
// PRE: Image struct is populated
// POST: Returns nil if valid, error otherwise
func (i *Image) Validate() error {
	if strings.TrimSpace(i.Filename) == "" {
		return ErrEmptyFilename
	}
	return nil
}

// NormalizeCategory maps empty or blank categories to DefaultCategory.
func NormalizeCategory(category string) string {
	c := strings.TrimSpace(category)
	if c == "" {
		return DefaultCategory
	}
	return c
}

// Album is a query-time grouping of images sharing a category.
// Cover is the filename of the most recently uploaded image in the group.
type Album struct {
	Category string
	Count    int
	Cover    string
}
