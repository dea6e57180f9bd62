package accepted

import (
	"log"
	"net/http"

	"github.com/a-h/templ"

	"github.com/sodikinson/valentine/internal/web/pages"
)

// SessionClearer tears down a visitor's proposal state.
type SessionClearer interface {
	Clear(w http.ResponseWriter, r *http.Request) error
}

// Handler renders the accepted page and discards the visitor's click count.
// A failure to clear the session is logged but does not spoil the page.
func Handler(store SessionClearer, shareLink bool) http.HandlerFunc {
	page := pages.Component(pages.Accepted(shareLink))

	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Clear(w, r); err != nil {
			log.Printf("WARN: %v", err)
		}

		w.Header().Set("Cache-Control", "no-store")
		templ.Handler(page).ServeHTTP(w, r)
	}
}
