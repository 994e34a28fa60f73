package web

import (
	"database/sql"
	"errors"
	"net/http"

	"clubsite/internal/application/orchestrators"
	"clubsite/internal/application/projections"
)

// handleHome handles GET / with the latest announcements and next events.
func handleHome(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.GetHome(r.Context(), projections.GetHomeDeps{
		AnnouncementStore: stores.AnnouncementStore,
		EventStore:        stores.EventStore,
		Now:               timeNow,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "home.html", result)
}

// handleAbout handles GET /about listing every member, newest first.
func handleAbout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	members, err := stores.MemberStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "about.html", map[string]any{"Members": members})
}

// handleEvents handles GET /events listing all events, soonest first.
func handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	events, err := stores.EventStore.ListByDate(r.Context(), false)
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "events.html", map[string]any{
		"Events": events,
		"Today":  startOfToday(),
	})
}

// handleEventDetail handles GET /events/{id}.
func handleEventDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	e, err := stores.EventStore.GetByID(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "event_detail.html", map[string]any{"Event": e})
}

// handleGallery handles GET /gallery showing one album per category.
func handleGallery(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	albums, err := stores.GalleryStore.Albums(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "gallery.html", map[string]any{"Albums": albums})
}

// handleGalleryCategory handles GET /gallery/{category}.
func handleGalleryCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	category := r.PathValue("category")
	images, err := stores.GalleryStore.ListByCategory(r.Context(), category)
	if err != nil {
		internalError(w, err)
		return
	}
	if len(images) == 0 {
		http.NotFound(w, r)
		return
	}
	renderTemplate(w, r, "gallery_category.html", map[string]any{
		"Category": category,
		"Images":   images,
	})
}

// handleAnnouncements handles GET /announcements, newest first.
func handleAnnouncements(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	announcements, err := stores.AnnouncementStore.ListRecent(r.Context(), 0)
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "announcements.html", map[string]any{"Announcements": announcements})
}

// handleContact handles GET (form) and POST (submit) for /contact.
func handleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		renderTemplate(w, r, "contact.html", map[string]any{
			"Name": "", "Email": "", "Message": "",
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.SubmitContactInput{
			Name:    r.FormValue("name"),
			Email:   r.FormValue("email"),
			Message: r.FormValue("message"),
		}
		deps := orchestrators.SubmitContactDeps{
			ContactStore: stores.ContactStore,
			Now:          timeNow,
			EmailSender:  emailSender,
			FromAddress:  emailFromAddress,
			NotifyTo:     adminEmail,
		}

		if _, err := orchestrators.ExecuteSubmitContact(r.Context(), input, deps); err != nil {
			if isDomainError(err) {
				renderTemplate(w, r, "contact.html", map[string]any{
					"Error":   err.Error(),
					"Name":    input.Name,
					"Email":   input.Email,
					"Message": input.Message,
				})
				return
			}
			internalError(w, err)
			return
		}

		addFlash(w, r, FlashSuccess, "Thank you for reaching out! We will get back to you soon.")
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleUpload serves a stored file by name. The media store refuses names
// that resolve outside the upload dir.
func handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	path, err := mediaStore.Path(r.PathValue("filename"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}
