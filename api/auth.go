package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ms-shaziya7/capture-moments/internal/domain"
	"github.com/ms-shaziya7/capture-moments/internal/service/auth"
)

type AuthHandler struct {
	service  auth.AuthUseCase
	sessions SessionStore
	timeout  time.Duration
}

type loginRequest struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type signupRequest struct {
	Name            string `form:"name" json:"name" binding:"required"`
	Email           string `form:"email" json:"email" binding:"required,email"`
	Password        string `form:"password" json:"password" binding:"required"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password"`
}

type forgotPasswordRequest struct {
	Email string `form:"email" json:"email" binding:"required"`
}

func NewAuthHandler(service auth.AuthUseCase, sessions SessionStore, timeout time.Duration) *AuthHandler {
	return &AuthHandler{service: service, sessions: sessions, timeout: timeout}
}

func (h *AuthHandler) Register(router *gin.RouterGroup) {
	router.GET("/login", h.loginForm)
	router.POST("/login", h.login)
	router.GET("/signup", h.signupForm)
	router.POST("/signup", h.signup)
	router.GET("/forgot_password", h.forgotPasswordForm)
	router.POST("/forgot_password", h.forgotPassword)
	router.GET("/logout", h.logout)
}

// RegisterProtected adds the routes that need a logged-in session.
func (h *AuthHandler) RegisterProtected(router *gin.RouterGroup) {
	router.GET("/dashboard", h.dashboard)
}

func (h *AuthHandler) loginForm(c *gin.Context) {
	render(c, http.StatusOK, "login", nil)
}

func (h *AuthHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		renderMessage(c, http.StatusBadRequest, "login", categoryDanger, bindingMessage(err))
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	sess, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		renderError(c, "login", err)
		return
	}

	if err := h.sessions.Save(c.Writer, c.Request, sess); err != nil {
		log.Printf("save session for %s: %v", sess.UserEmail, err)
		renderMessage(c, http.StatusInternalServerError, "login", categoryDanger, "Could not start your session. Please try again.")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *AuthHandler) signupForm(c *gin.Context) {
	render(c, http.StatusOK, "signup", nil)
}

func (h *AuthHandler) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBind(&req); err != nil {
		renderMessage(c, http.StatusBadRequest, "signup", categoryDanger, bindingMessage(err))
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	_, err := h.service.Signup(ctx, auth.SignupInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		renderError(c, "signup", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) forgotPasswordForm(c *gin.Context) {
	render(c, http.StatusOK, "forgot_password", nil)
}

func (h *AuthHandler) forgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		renderMessage(c, http.StatusBadRequest, "forgot_password", categoryDanger, bindingMessage(err))
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	if err := h.service.ForgotPassword(ctx, req.Email); err != nil {
		renderError(c, "forgot_password", err)
		return
	}
	renderMessage(c, http.StatusOK, "forgot_password", categoryInfo,
		"A password reset link has been sent to your email (dummy action).")
}

func (h *AuthHandler) logout(c *gin.Context) {
	if err := h.sessions.Clear(c.Writer, c.Request); err != nil {
		log.Printf("clear session: %v", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) dashboard(c *gin.Context) {
	sess := currentSession(c)
	if !sess.Authenticated() {
		redirectToLogin(c)
		return
	}
	render(c, http.StatusOK, "dashboard", gin.H{"user_name": sess.UserName})
}

// isNotAuthenticated reports errors that send the browser back to the login page.
func isNotAuthenticated(err error) bool {
	return errors.Is(err, domain.ErrNotAuthenticated)
}
