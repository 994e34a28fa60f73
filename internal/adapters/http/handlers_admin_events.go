package web

import (
	"database/sql"
	"errors"
	"net/http"

	"clubsite/internal/application/orchestrators"
	"clubsite/internal/domain/event"
)

// handleAdminEvents handles GET /admin/events, newest date first.
func handleAdminEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	events, err := stores.EventStore.ListByDate(r.Context(), true)
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "admin_events.html", map[string]any{"Events": events})
}

// handleAdminEventAdd handles GET (form) and POST (create) for /admin/events/add.
func handleAdminEventAdd(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		renderTemplate(w, r, "admin_event_form.html", map[string]any{
			"Form": orchestrators.AddEventInput{},
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		poster, closer, err := formFile(r, "poster")
		if err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		if closer != nil {
			defer closer.Close()
		}

		input := orchestrators.AddEventInput{
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			Date:        r.FormValue("date"),
			Time:        r.FormValue("time"),
			Poster:      poster,
		}
		deps := orchestrators.AddEventDeps{
			EventStore: stores.EventStore,
			Media:      mediaStore,
			Now:        timeNow,
		}

		if _, err := orchestrators.ExecuteAddEvent(r.Context(), input, deps); err != nil {
			if isDomainError(err) || isUploadError(err) {
				renderTemplate(w, r, "admin_event_form.html", map[string]any{
					"Error": err.Error(),
					"Form":  input,
				})
				return
			}
			internalError(w, err)
			return
		}

		addFlash(w, r, FlashSuccess, "Event added successfully!")
		http.Redirect(w, r, "/admin/events", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminEventEdit handles GET (form) and POST (update) for
// /admin/events/{id}/edit.
func handleAdminEventEdit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if r.Method == "GET" {
		e, err := stores.EventStore.GetByID(r.Context(), id)
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "admin_event_form.html", map[string]any{
			"Editing": true,
			"Form": orchestrators.EditEventInput{
				ID:          e.ID,
				Title:       e.Title,
				Description: e.Description,
				Date:        e.Date.Format(event.DateLayout),
				Time:        e.Time,
			},
			"Poster": e.Poster,
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		poster, closer, err := formFile(r, "poster")
		if err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		if closer != nil {
			defer closer.Close()
		}

		input := orchestrators.EditEventInput{
			ID:          id,
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			Date:        r.FormValue("date"),
			Time:        r.FormValue("time"),
			Poster:      poster,
		}
		deps := orchestrators.EditEventDeps{
			EventStore: stores.EventStore,
			Media:      mediaStore,
		}

		if err := orchestrators.ExecuteEditEvent(r.Context(), input, deps); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.NotFound(w, r)
				return
			}
			if isDomainError(err) || isUploadError(err) {
				renderTemplate(w, r, "admin_event_form.html", map[string]any{
					"Editing": true,
					"Error":   err.Error(),
					"Form":    input,
				})
				return
			}
			internalError(w, err)
			return
		}

		addFlash(w, r, FlashSuccess, "Event updated successfully!")
		http.Redirect(w, r, "/admin/events", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminEventDelete handles POST /admin/events/{id}/delete.
func handleAdminEventDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	deps := orchestrators.DeleteEventDeps{EventStore: stores.EventStore, Media: mediaStore}
	if err := orchestrators.ExecuteDeleteEvent(r.Context(), orchestrators.DeleteEventInput{ID: id}, deps); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
			return
		}
		internalError(w, err)
		return
	}

	addFlash(w, r, FlashSuccess, "Event deleted.")
	http.Redirect(w, r, "/admin/events", http.StatusSeeOther)
}
