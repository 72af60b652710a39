package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/ms-shaziya7/capture-moments/internal/domain"
)

const (
	categorySuccess = "success"
	categoryDanger  = "danger"
	categoryWarning = "warning"
	categoryInfo    = "info"
)

// view is the rendered page: a named template plus the message and data it would show.
type view struct {
	Page     string `json:"page"`
	Message  string `json:"message,omitempty"`
	Category string `json:"category,omitempty"`
	Data     gin.H  `json:"data,omitempty"`
}

func render(c *gin.Context, status int, page string, data gin.H) {
	c.JSON(status, view{Page: page, Data: data})
}

func renderMessage(c *gin.Context, status int, page, category, message string) {
	c.JSON(status, view{Page: page, Message: message, Category: category})
}

// renderError re-renders page with the message mapped from err.
func renderError(c *gin.Context, page string, err error) {
	status, message := statusFor(err)
	category := categoryDanger
	if status == http.StatusServiceUnavailable {
		category = categoryWarning
	}
	renderMessage(c, status, page, category, message)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrPasswordMismatch):
		return http.StatusBadRequest, "Passwords do not match!"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password."
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "Email already registered. Please login."
	case errors.Is(err, domain.ErrEmailNotFound):
		return http.StatusNotFound, "Email not found."
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, err.Error()
	default:
		return http.StatusInternalServerError, "Something went wrong. Please try again."
	}
}

func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required.", fe.Field())
		case "email":
			return "Please enter a valid email address."
		case "bookingdate":
			return "Date must be in YYYY-MM-DD format."
		}
	}
	return "Invalid form submission."
}

func requestContext(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}
