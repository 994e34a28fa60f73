package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"clubsite/internal/domain/gallery"
)

// GalleryStoreForUpload defines the store interface needed by the gallery orchestrators.
type GalleryStoreForUpload interface {
	Create(ctx context.Context, i gallery.Image) (int64, error)
	GetByID(ctx context.Context, id int64) (gallery.Image, error)
	Delete(ctx context.Context, id int64) error
}

var ErrNoFilesSelected = errors.New("no files selected")

// UploadGalleryInput carries input for the gallery upload orchestrator.
type UploadGalleryInput struct {
	Files    []FileUpload
	Caption  string
	Category string
}

// UploadGalleryDeps holds dependencies for UploadGallery.
type UploadGalleryDeps struct {
	GalleryStore GalleryStoreForUpload
	Media        MediaStore
	Now          func() time.Time
}

// RejectedFile records one file that was not stored and why.
type RejectedFile struct {
	Filename string
	Reason   string
}

// UploadGalleryResult reports the per-file outcome of a batch upload.
type UploadGalleryResult struct {
	Stored   int
	Rejected []RejectedFile
}

// ExecuteUploadGallery stores each submitted file independently. One bad
// file never blocks the others.
// PRE: Files came from a multipart form
// POST: Stored + len(Rejected) == len(input.Files); every stored file has a
// matching row
func ExecuteUploadGallery(ctx context.Context, input UploadGalleryInput, deps UploadGalleryDeps) (UploadGalleryResult, error) {
	if len(input.Files) == 0 {
		return UploadGalleryResult{}, ErrNoFilesSelected
	}

	var result UploadGalleryResult
	for _, f := range input.Files {
		stored, err := deps.Media.Save(f.Filename, f.Reader)
		if err != nil {
			result.Rejected = append(result.Rejected, RejectedFile{Filename: f.Filename, Reason: err.Error()})
			continue
		}

		img := gallery.Image{
			Filename:   stored,
			Caption:    input.Caption,
			Category:   input.Category,
			UploadedAt: deps.Now(),
		}
		if _, err := deps.GalleryStore.Create(ctx, img); err != nil {
			removeStoredFile(deps.Media, stored)
			result.Rejected = append(result.Rejected, RejectedFile{Filename: f.Filename, Reason: "could not be saved"})
			slog.Error("gallery_create_failed", "filename", f.Filename, "error", err.Error())
			continue
		}
		result.Stored++
	}

	slog.Info("gallery_upload", "stored", result.Stored, "rejected", len(result.Rejected), "category", input.Category)
	return result, nil
}

// DeleteGalleryImageInput carries input for the delete-image orchestrator.
type DeleteGalleryImageInput struct {
	ID int64
}

// DeleteGalleryImageDeps holds dependencies for DeleteGalleryImage.
type DeleteGalleryImageDeps struct {
	GalleryStore GalleryStoreForUpload
	Media        MediaStore
}

// ExecuteDeleteGalleryImage removes an image row and its file.
// POST: The row is gone; file removal is best effort
func ExecuteDeleteGalleryImage(ctx context.Context, input DeleteGalleryImageInput, deps DeleteGalleryImageDeps) error {
	existing, err := deps.GalleryStore.GetByID(ctx, input.ID)
	if err != nil {
		return err
	}
	if err := deps.GalleryStore.Delete(ctx, input.ID); err != nil {
		return err
	}
	removeStoredFile(deps.Media, existing.Filename)
	slog.Info("gallery_image_deleted", "id", input.ID, "filename", existing.Filename)
	return nil
}
