package web

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/securecookie"
)

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

// Flash categories map to alert styles in the layout template.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

const flashCookieName = "clubsite_flash"

var flashCodec *securecookie.SecureCookie

// InitFlashCodec must be called once at startup before any handler runs.
// The hash key signs the flash cookie so clients cannot forge notices.
func InitFlashCodec(hashKey []byte) {
	flashCodec = securecookie.New(hashKey, nil)
}

// addFlash queues a notice for the next page load. Notices queued earlier in
// the same response are kept, so a batch handler can report every outcome.
// PRE: InitFlashCodec has been called.
// POST: the response carries one flash cookie holding all pending notices
// including this one.
func addFlash(w http.ResponseWriter, r *http.Request, category, message string) {
	pending, queued := queuedFlashes(w)
	if !queued {
		pending = peekFlashes(r)
	}
	pending = append(pending, Flash{Category: category, Message: message})

	encoded, err := flashCodec.Encode(flashCookieName, pending)
	if err != nil {
		slog.Error("flash_encode_failed", "error", err)
		return
	}
	if queued {
		dropQueuedFlashCookie(w)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// queuedFlashes decodes notices already set on this response. The bool
// reports whether any flash cookie was queued, including the clearing
// cookie popFlashes writes.
func queuedFlashes(w http.ResponseWriter) ([]Flash, bool) {
	for _, line := range w.Header().Values("Set-Cookie") {
		if !strings.HasPrefix(line, flashCookieName+"=") {
			continue
		}
		value := strings.TrimPrefix(line, flashCookieName+"=")
		if i := strings.IndexByte(value, ';'); i >= 0 {
			value = value[:i]
		}
		var pending []Flash
		if err := flashCodec.Decode(flashCookieName, value, &pending); err != nil {
			return nil, true
		}
		return pending, true
	}
	return nil, false
}

// dropQueuedFlashCookie removes queued flash Set-Cookie lines so the
// response ends up with exactly one.
func dropQueuedFlashCookie(w http.ResponseWriter) {
	header := w.Header()
	kept := make([]string, 0, len(header.Values("Set-Cookie")))
	for _, line := range header.Values("Set-Cookie") {
		if !strings.HasPrefix(line, flashCookieName+"=") {
			kept = append(kept, line)
		}
	}
	header.Del("Set-Cookie")
	for _, line := range kept {
		header.Add("Set-Cookie", line)
	}
}

// popFlashes returns pending notices and clears the cookie.
func popFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	pending := peekFlashes(r)
	if len(pending) == 0 {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return pending
}

func peekFlashes(r *http.Request) []Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}
	var pending []Flash
	if err := flashCodec.Decode(flashCookieName, cookie.Value, &pending); err != nil {
		return nil
	}
	return pending
}
