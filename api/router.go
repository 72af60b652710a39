package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ms-shaziya7/capture-moments/internal/service/auth"
	"github.com/ms-shaziya7/capture-moments/internal/service/booking"
)

type RouterConfig struct {
	Auth           auth.AuthUseCase
	Bookings       booking.BookingUseCase
	Sessions       SessionStore
	RequestTimeout time.Duration
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	registerValidators()

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), secureHeaders(), loadSession(cfg.Sessions))

	public := router.Group("/")
	NewPageHandler().Register(public)

	authHandler := NewAuthHandler(cfg.Auth, cfg.Sessions, cfg.RequestTimeout)
	authHandler.Register(public)

	protected := router.Group("/", requireLogin())
	authHandler.RegisterProtected(protected)
	NewBookingHandler(cfg.Bookings, cfg.RequestTimeout).Register(protected)

	return router
}
