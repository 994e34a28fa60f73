package web

import (
	"database/sql"
	"errors"
	"net/http"

	"clubsite/internal/application/orchestrators"
)

// handleAdminMembers handles GET (list) and POST (add) for /admin/members.
func handleAdminMembers(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		members, err := stores.MemberStore.List(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "admin_members.html", map[string]any{"Members": members})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		photo, closer, err := formFile(r, "photo")
		if err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		if closer != nil {
			defer closer.Close()
		}

		input := orchestrators.AddMemberInput{
			Name:  r.FormValue("name"),
			Role:  r.FormValue("role"),
			Bio:   r.FormValue("bio"),
			Photo: photo,
		}
		deps := orchestrators.AddMemberDeps{
			MemberStore: stores.MemberStore,
			Media:       mediaStore,
			Now:         timeNow,
		}

		if _, err := orchestrators.ExecuteAddMember(r.Context(), input, deps); err != nil {
			if isDomainError(err) || isUploadError(err) {
				addFlash(w, r, FlashDanger, err.Error())
				http.Redirect(w, r, "/admin/members", http.StatusSeeOther)
				return
			}
			internalError(w, err)
			return
		}

		addFlash(w, r, FlashSuccess, "Member added successfully!")
		http.Redirect(w, r, "/admin/members", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminMemberDelete handles POST /admin/members/{id}/delete.
func handleAdminMemberDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	deps := orchestrators.RemoveMemberDeps{MemberStore: stores.MemberStore, Media: mediaStore}
	if err := orchestrators.ExecuteRemoveMember(r.Context(), orchestrators.RemoveMemberInput{ID: id}, deps); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
			return
		}
		internalError(w, err)
		return
	}

	addFlash(w, r, FlashSuccess, "Member removed.")
	http.Redirect(w, r, "/admin/members", http.StatusSeeOther)
}
