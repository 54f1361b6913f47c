// Package auth gates the mutating routes behind a single configured
// credential pair and keeps the login state in a signed, client-held
// session cookie. The server stores nothing.
package auth

import (
	"errors"
	"net/http"

	"github.com/gorilla/sessions"
)

// SessionName is the name of the session cookie.
const SessionName = "jotter-session"

const loggedInKey = "logged_in"

// The error text is part of the user-facing contract; don't reword it.
var (
	ErrInvalidUsername = errors.New("Invalid Username!")
	ErrInvalidPassword = errors.New("Invalid Password!")
)

// Guard validates the client session against the configured admin
// credentials and queues one-shot flash messages for the next page.
type Guard struct {
	store    *sessions.CookieStore
	username string
	password string
}

// NewGuard creates a Guard signing its session cookie with secret.
func NewGuard(secret []byte, username, password string) *Guard {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Guard{store: store, username: username, password: password}
}

// Login marks the session authenticated when both credentials match.
// The username is checked first, so a double mismatch reports the
// username error. Comparison is plain string equality against the one
// configured pair; this is fine for a single-owner install but do not
// reuse the pattern with stored user accounts.
func (g *Guard) Login(w http.ResponseWriter, r *http.Request, username, password string) error {
	if username != g.username {
		return ErrInvalidUsername
	}
	if password != g.password {
		return ErrInvalidPassword
	}
	session := g.session(r)
	session.Values[loggedInKey] = true
	return session.Save(r, w)
}

// Logout clears the authenticated flag. It always succeeds, whether or
// not the session was authenticated. The session cookie itself is kept
// so that queued flash messages still reach the next page.
func (g *Guard) Logout(w http.ResponseWriter, r *http.Request) error {
	session := g.session(r)
	delete(session.Values, loggedInKey)
	return session.Save(r, w)
}

// IsAuthenticated reports whether the request carries an authenticated
// session. A missing, malformed, or tampered cookie reads as anonymous.
func (g *Guard) IsAuthenticated(r *http.Request) bool {
	session := g.session(r)
	v, ok := session.Values[loggedInKey].(bool)
	return ok && v
}

// Flash queues a message to be shown on the next rendered page.
func (g *Guard) Flash(w http.ResponseWriter, r *http.Request, message string) error {
	session := g.session(r)
	session.AddFlash(message)
	return session.Save(r, w)
}

// Flashes returns the queued messages and clears them, so each message
// is delivered at most once.
func (g *Guard) Flashes(w http.ResponseWriter, r *http.Request) []string {
	session := g.session(r)
	var messages []string
	for _, f := range session.Flashes() {
		if m, ok := f.(string); ok {
			messages = append(messages, m)
		}
	}
	if len(messages) > 0 {
		// Saving persists the now-empty flash queue. A failed save only
		// means the messages show once more; not worth failing the render.
		_ = session.Save(r, w)
	}
	return messages
}

// session never fails: when the cookie is absent or its signature does
// not verify, gorilla hands back a fresh session, which is exactly the
// anonymous state we want.
func (g *Guard) session(r *http.Request) *sessions.Session {
	session, _ := g.store.Get(r, SessionName)
	return session
}
