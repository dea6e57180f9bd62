package home

import (
	"log"
	"net/http"

	"github.com/a-h/templ"

	"github.com/sodikinson/valentine/internal/proposal"
	"github.com/sodikinson/valentine/internal/web/pages"
)

// SessionStore loads and persists a visitor's proposal state.
type SessionStore interface {
	Load(r *http.Request) *proposal.Home
	Save(w http.ResponseWriter, r *http.Request, h *proposal.Home) error
}

// Handler renders the proposal page for the visitor's current click count.
func Handler(store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := store.Load(r)

		// The page depends on the visitor's cookie.
		w.Header().Set("Cache-Control", "no-store")
		templ.Handler(pages.Component(pages.Home(h))).ServeHTTP(w, r)
	}
}

// NoHandler records a No click and sends the visitor back to the proposal.
func NoHandler(store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := store.Load(r)
		h.NoClick()

		if err := store.Save(w, r, h); err != nil {
			log.Printf("ERROR: %v", err)
			http.Error(w, "Failed to record answer", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
