package web

import (
	"net/http"

	"clubsite/internal/application/orchestrators"
)

// handleAdminAnnouncements handles GET (list) and POST (publish) for
// /admin/announcements. Announcements cannot be edited or deleted.
func handleAdminAnnouncements(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		announcements, err := stores.AnnouncementStore.ListRecent(r.Context(), 0)
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "admin_announcements.html", map[string]any{"Announcements": announcements})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.PublishAnnouncementInput{
			Title:   r.FormValue("title"),
			Content: r.FormValue("content"),
		}
		deps := orchestrators.PublishAnnouncementDeps{
			AnnouncementStore: stores.AnnouncementStore,
			Now:               timeNow,
		}

		if _, err := orchestrators.ExecutePublishAnnouncement(r.Context(), input, deps); err != nil {
			if isDomainError(err) {
				addFlash(w, r, FlashDanger, err.Error())
				http.Redirect(w, r, "/admin/announcements", http.StatusSeeOther)
				return
			}
			internalError(w, err)
			return
		}

		addFlash(w, r, FlashSuccess, "Announcement published!")
		http.Redirect(w, r, "/admin/announcements", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}
