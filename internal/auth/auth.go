package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionName  = "portfolio-session"
	visitorKey   = "visitor_id"
	adminAuthKey = "admin_authenticated"
)

var (
	store             *sessions.CookieStore
	adminPasswordHash string
)

// Init configures the cookie store and the admin credential.
func Init(sessionSecret, passwordHash string) {
	store = sessions.NewCookieStore([]byte(sessionSecret))
	adminPasswordHash = passwordHash
}

// VisitorID returns the caller's visitor ID, minting one on first contact.
func VisitorID(w http.ResponseWriter, r *http.Request) string {
	session, _ := store.Get(r, sessionName)

	if id, ok := session.Values[visitorKey].(string); ok && id != "" {
		return id
	}

	id := uuid.New().String()
	session.Values[visitorKey] = id
	if err := session.Save(r, w); err != nil {
		// Logging without a visitor cookie still works; the ID is per-request.
		return id
	}
	return id
}

// AdminLoginHandler authenticates the site owner against the configured
// bcrypt hash.
func AdminLoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if adminPasswordHash == "" {
		http.Error(w, "Admin access is not configured", http.StatusForbidden)
		return
	}

	r.ParseForm()
	password := r.FormValue("password")

	if err := bcrypt.CompareHashAndPassword([]byte(adminPasswordHash), []byte(password)); err != nil {
		http.Error(w, "Invalid password", http.StatusUnauthorized)
		return
	}

	session, _ := store.Get(r, sessionName)
	session.Values[adminAuthKey] = true
	session.Save(r, w)
	w.WriteHeader(http.StatusOK)
}

func AdminLogoutHandler(w http.ResponseWriter, r *http.Request) {
	session, _ := store.Get(r, sessionName)
	session.Values[adminAuthKey] = false
	session.Save(r, w)
	w.WriteHeader(http.StatusOK)
}

// AdminMiddleware guards owner-only routes.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := store.Get(r, sessionName)

		if auth, ok := session.Values[adminAuthKey].(bool); !ok || !auth {
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
