// Package session keeps each visitor's proposal click count in a signed
// cookie, so the count lives exactly as long as the visitor's view.
package session

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"github.com/sodikinson/valentine/internal/proposal"
)

const (
	cookieName = "valentine"
	clicksKey  = "clicks"
)

var ErrEmptyKey = errors.New("session key must not be empty")

type Store struct {
	cookies *sessions.CookieStore
}

// New creates a Store signing cookies with key.
func New(key []byte, secure bool) (*Store, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	cookies := sessions.NewCookieStore(key)
	cookies.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cookies}, nil
}

// RandomKey returns a fresh signing key for deployments without a configured
// secret.
func RandomKey() ([]byte, error) {
	key := securecookie.GenerateRandomKey(32)
	if key == nil {
		return nil, errors.New("generate session key")
	}
	return key, nil
}

// Load returns the proposal state for the visitor behind r. A missing or
// unreadable cookie yields a fresh view.
func (s *Store) Load(r *http.Request) *proposal.Home {
	sess, err := s.cookies.Get(r, cookieName)
	if err != nil {
		log.Printf("WARN: discarding unreadable session: %v", err)
	}
	if sess == nil {
		return &proposal.Home{}
	}
	clicks, _ := sess.Values[clicksKey].(int)
	return proposal.Restore(clicks)
}

// Save writes h's click count back to the visitor's cookie.
func (s *Store) Save(w http.ResponseWriter, r *http.Request, h *proposal.Home) error {
	sess, _ := s.cookies.Get(r, cookieName)
	if sess == nil {
		return fmt.Errorf("session %q unavailable", cookieName)
	}
	sess.Values[clicksKey] = h.Clicks()
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear expires the visitor's cookie, tearing down their proposal view.
func (s *Store) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.cookies.Get(r, cookieName)
	if sess == nil {
		return nil
	}
	sess.Options.MaxAge = -1
	delete(sess.Values, clicksKey)
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
