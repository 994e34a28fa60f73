package web

import "net/http"

// registerRoutes maps every path to its handler. Handlers branch on method
// themselves, and admin handlers are wrapped with requireAdmin.
func registerRoutes(mux *http.ServeMux) {
	// Public pages
	mux.HandleFunc("/{$}", handleHome)
	mux.HandleFunc("/about", handleAbout)
	mux.HandleFunc("/events", handleEvents)
	mux.HandleFunc("/events/{id}", handleEventDetail)
	mux.HandleFunc("/gallery", handleGallery)
	mux.HandleFunc("/gallery/{category}", handleGalleryCategory)
	mux.HandleFunc("/announcements", handleAnnouncements)
	mux.HandleFunc("/contact", handleContact)
	mux.HandleFunc("/uploads/{filename}", handleUpload)

	// Admin: login and logout stay reachable without a session
	mux.HandleFunc("/admin", handleAdminLogin)
	mux.HandleFunc("/admin/logout", handleAdminLogout)

	mux.HandleFunc("/admin/dashboard", requireAdmin(handleAdminDashboard))
	mux.HandleFunc("/admin/events", requireAdmin(handleAdminEvents))
	mux.HandleFunc("/admin/events/add", requireAdmin(handleAdminEventAdd))
	mux.HandleFunc("/admin/events/{id}/edit", requireAdmin(handleAdminEventEdit))
	mux.HandleFunc("/admin/events/{id}/delete", requireAdmin(handleAdminEventDelete))
	mux.HandleFunc("/admin/gallery", requireAdmin(handleAdminGallery))
	mux.HandleFunc("/admin/gallery/{id}/delete", requireAdmin(handleAdminGalleryDelete))
	mux.HandleFunc("/admin/members", requireAdmin(handleAdminMembers))
	mux.HandleFunc("/admin/members/{id}/delete", requireAdmin(handleAdminMemberDelete))
	mux.HandleFunc("/admin/announcements", requireAdmin(handleAdminAnnouncements))
	mux.HandleFunc("/admin/contacts", requireAdmin(handleAdminContacts))
}
