package web

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"clubsite/internal/application/orchestrators"
)

// handleAdminGallery handles GET (list) and POST (multi-file upload) for
// /admin/gallery.
func handleAdminGallery(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		images, err := stores.GalleryStore.List(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "admin_gallery.html", map[string]any{"Images": images})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		var files []orchestrators.FileUpload
		if r.MultipartForm != nil {
			for _, header := range r.MultipartForm.File["images"] {
				if header.Filename == "" {
					continue
				}
				f, err := header.Open()
				if err != nil {
					internalError(w, err)
					return
				}
				defer f.Close()
				files = append(files, orchestrators.FileUpload{Filename: header.Filename, Reader: f})
			}
		}

		input := orchestrators.UploadGalleryInput{
			Files:    files,
			Caption:  r.FormValue("caption"),
			Category: r.FormValue("category"),
		}
		deps := orchestrators.UploadGalleryDeps{
			GalleryStore: stores.GalleryStore,
			Media:        mediaStore,
			Now:          timeNow,
		}

		result, err := orchestrators.ExecuteUploadGallery(r.Context(), input, deps)
		if errors.Is(err, orchestrators.ErrNoFilesSelected) {
			addFlash(w, r, FlashDanger, "No files selected.")
			http.Redirect(w, r, "/admin/gallery", http.StatusSeeOther)
			return
		}
		if err != nil {
			internalError(w, err)
			return
		}

		if result.Stored > 0 {
			addFlash(w, r, FlashSuccess, fmt.Sprintf("%d file(s) uploaded successfully!", result.Stored))
		}
		for _, rej := range result.Rejected {
			addFlash(w, r, FlashDanger, fmt.Sprintf("%s: %s", rej.Filename, rej.Reason))
		}
		http.Redirect(w, r, "/admin/gallery", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminGalleryDelete handles POST /admin/gallery/{id}/delete.
func handleAdminGalleryDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	deps := orchestrators.DeleteGalleryImageDeps{GalleryStore: stores.GalleryStore, Media: mediaStore}
	if err := orchestrators.ExecuteDeleteGalleryImage(r.Context(), orchestrators.DeleteGalleryImageInput{ID: id}, deps); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
			return
		}
		internalError(w, err)
		return
	}

	addFlash(w, r, FlashSuccess, "Image deleted.")
	http.Redirect(w, r, "/admin/gallery", http.StatusSeeOther)
}
