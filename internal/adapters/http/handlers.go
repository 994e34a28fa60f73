package web

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"clubsite/internal/adapters/storage/media"
	"clubsite/internal/application/orchestrators"
	"clubsite/internal/domain/announcement"
	"clubsite/internal/domain/contact"
	"clubsite/internal/domain/event"
	"clubsite/internal/domain/member"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// startOfToday truncates the current time to midnight local time, the
// boundary used for the upcoming-event queries.
func startOfToday() time.Time {
	now := timeNow()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// validationErrors lists the user-facing sentinels whose messages are safe
// to echo back into a form. Anything else is treated as internal.
var validationErrors = []error{
	member.ErrEmptyName,
	member.ErrNameTooLong,
	member.ErrRoleTooLong,
	event.ErrEmptyTitle,
	event.ErrTitleTooLong,
	event.ErrMissingDate,
	announcement.ErrEmptyTitle,
	announcement.ErrTitleTooLong,
	announcement.ErrEmptyContent,
	contact.ErrEmptyName,
	contact.ErrNameTooLong,
	contact.ErrEmptyEmail,
	contact.ErrInvalidEmail,
	contact.ErrEmptyMessage,
	orchestrators.ErrInvalidEventDate,
	orchestrators.ErrNoFilesSelected,
}

func isDomainError(err error) bool {
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// isUploadError reports whether an error came from rejecting the uploaded
// file itself, which the form should show rather than a 500.
func isUploadError(err error) bool {
	return errors.Is(err, media.ErrDisallowedExtension) || errors.Is(err, media.ErrUnsafeFilename)
}

// maxUploadBytes caps an upload form's in-memory parse size.
const maxUploadBytes = 32 << 20

// formFile extracts one optional file field from a multipart form.
// A missing or unnamed part yields (nil, nil, nil). The caller must close
// the returned closer when it is non-nil.
func formFile(r *http.Request, field string) (*orchestrators.FileUpload, io.Closer, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	if header.Filename == "" {
		file.Close()
		return nil, nil, nil
	}
	return &orchestrators.FileUpload{Filename: header.Filename, Reader: file}, file, nil
}
