package session

import (
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ms-shaziya7/capture-moments/config"
	"github.com/ms-shaziya7/capture-moments/internal/domain"
)

const (
	keyLoggedIn  = "logged_in"
	keyUserEmail = "user_email"
	keyUserName  = "user_name"
)

// Store keeps domain.Session in a signed and encrypted cookie.
type Store struct {
	name  string
	store *sessions.CookieStore
}

func NewStore(cfg config.SessionConfig) *Store {
	hashKey := sha256.Sum256([]byte(cfg.Secret))
	blockKey := sha256.Sum256([]byte("enc:" + cfg.Secret))

	cs := sessions.NewCookieStore(hashKey[:], blockKey[:])
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAgeSeconds,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	cs.MaxAge(cfg.MaxAgeSeconds)

	return &Store{name: cfg.Name, store: cs}
}

// Load never fails: a missing, expired or tampered cookie yields an empty session.
func (s *Store) Load(r *http.Request) domain.Session {
	sess, err := s.store.Get(r, s.name)
	if err != nil || sess == nil {
		return domain.Session{}
	}

	var out domain.Session
	out.LoggedIn, _ = sess.Values[keyLoggedIn].(bool)
	out.UserEmail, _ = sess.Values[keyUserEmail].(string)
	out.UserName, _ = sess.Values[keyUserName].(string)
	return out
}

func (s *Store) Save(w http.ResponseWriter, r *http.Request, data domain.Session) error {
	sess, _ := s.store.Get(r, s.name)
	sess.Values[keyLoggedIn] = data.LoggedIn
	sess.Values[keyUserEmail] = data.UserEmail
	sess.Values[keyUserName] = data.UserName
	sess.Options.MaxAge = s.store.Options.MaxAge
	return sess.Save(r, w)
}

// Clear expires the cookie and drops every stored field.
func (s *Store) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.store.Get(r, s.name)
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
