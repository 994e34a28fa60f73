package web

import (
	"net/http"

	"clubsite/internal/adapters/http/middleware"
	"clubsite/internal/application/orchestrators"
	"clubsite/internal/application/projections"
)

// requireAdmin redirects to the login page when no valid session exists.
func requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !middleware.IsAdmin(r.Context()) {
			addFlash(w, r, FlashWarning, "Please log in to access the admin area.")
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// handleAdminLogin handles GET (form) and POST (authenticate) for /admin.
func handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		// Already logged in, go straight to the dashboard
		if middleware.IsAdmin(r.Context()) {
			http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "admin_login.html", map[string]any{})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.LoginInput{Password: r.FormValue("password")}
		deps := orchestrators.LoginDeps{PasswordHash: adminPasswordHash}
		if err := orchestrators.ExecuteLogin(r.Context(), input, deps); err != nil {
			addFlash(w, r, FlashDanger, "Invalid password!")
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}

		token, err := sessions.Create()
		if err != nil {
			internalError(w, err)
			return
		}
		middleware.SetSessionCookie(w, token)
		addFlash(w, r, FlashSuccess, "Welcome back!")
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminLogout handles GET /admin/logout.
func handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.SessionToken(r); token != "" {
		sessions.Delete(token)
	}
	middleware.ClearSessionCookie(w)
	addFlash(w, r, FlashInfo, "You have been logged out.")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// handleAdminDashboard handles GET /admin/dashboard.
func handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.GetDashboard(r.Context(), projections.GetDashboardDeps{
		MemberStore:       stores.MemberStore,
		EventStore:        stores.EventStore,
		AnnouncementStore: stores.AnnouncementStore,
		GalleryStore:      stores.GalleryStore,
		ContactStore:      stores.ContactStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	data := map[string]any{
		"Dashboard": result,
		"Today":     startOfToday(),
	}
	if perfCollector != nil {
		data["Perf"] = perfCollector.Snapshot(5)
	}
	renderTemplate(w, r, "admin_dashboard.html", data)
}

// handleAdminContacts handles GET /admin/contacts, read-only.
func handleAdminContacts(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	messages, err := stores.ContactStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "admin_contacts.html", map[string]any{"Messages": messages})
}
