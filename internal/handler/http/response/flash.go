package response

import (
	"net/http"
	"net/url"
)

// flashCookie carries a one-shot notice to the next page load. It is
// readable by the frontend, which clears it after display.
const flashCookie = "flash"

// Flash categories
const (
	FlashDanger  = "danger"
	FlashInfo    = "info"
	FlashSuccess = "success"
)

// Flash sets the one-shot notice cookie.
func Flash(w http.ResponseWriter, category, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(category + ":" + message),
		Path:     "/",
		MaxAge:   60,
		SameSite: http.SameSiteLaxMode,
	})
}

// SeeOtherWithFlash sets a flash notice and answers with a 303 redirect.
// Used where a denied action sends the caller back to a page rather than
// returning an error body.
func SeeOtherWithFlash(w http.ResponseWriter, r *http.Request, location, category, message string) {
	Flash(w, category, message)
	http.Redirect(w, r, location, http.StatusSeeOther)
}
