package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ms-shaziya7/capture-moments/internal/domain"
)

const sessionKey = "session"

// SessionStore persists domain.Session between requests.
type SessionStore interface {
	Load(r *http.Request) domain.Session
	Save(w http.ResponseWriter, r *http.Request, sess domain.Session) error
	Clear(w http.ResponseWriter, r *http.Request) error
}

func loadSession(store SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionKey, store.Load(c.Request))
		c.Next()
	}
}

func currentSession(c *gin.Context) domain.Session {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(domain.Session); ok {
			return sess
		}
	}
	return domain.Session{}
}

// requireLogin stops the chain before any handler runs.
func requireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !currentSession(c).Authenticated() {
			redirectToLogin(c)
			return
		}
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
}

func secureHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "same-origin")
		h.Set("Cache-Control", "no-store")
		c.Next()
	}
}
