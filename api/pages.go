package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the informational pages that only name a view.
type PageHandler struct {
	pages map[string]string
}

func NewPageHandler() *PageHandler {
	return &PageHandler{pages: map[string]string{
		"/":                        "index",
		"/home":                    "home",
		"/about_us":                "about_us",
		"/profile":                 "profile",
		"/user_reviews":            "user_reviews",
		"/photographer_categories": "photographer_categories",
	}}
}

func (h *PageHandler) Register(router *gin.RouterGroup) {
	for path, page := range h.pages {
		router.GET(path, h.show(page))
	}
	router.GET("/healthz", h.health)
}

func (h *PageHandler) show(page string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		render(c, http.StatusOK, page, gin.H{
			"logged_in": sess.Authenticated(),
			"user_name": sess.UserName,
		})
	}
}

func (h *PageHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
