package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ms-shaziya7/capture-moments/internal/domain"
	"github.com/ms-shaziya7/capture-moments/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
	timeout time.Duration
}

type createBookingRequest struct {
	Name      string `form:"name" json:"name" binding:"required"`
	Location  string `form:"location" json:"location" binding:"required"`
	Date      string `form:"date" json:"date" binding:"required,bookingdate"`
	EventType string `form:"type" json:"type" binding:"required"`
}

type eventOption struct {
	Type  domain.EventType `json:"type"`
	Price int              `json:"price"`
}

func NewBookingHandler(service booking.BookingUseCase, timeout time.Duration) *BookingHandler {
	return &BookingHandler{service: service, timeout: timeout}
}

// Register expects router to be guarded by requireLogin.
func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/booking", h.form)
	router.POST("/booking", h.create)
	router.GET("/booking_history", h.history)
}

func (h *BookingHandler) form(c *gin.Context) {
	render(c, http.StatusOK, "booking", gin.H{
		"user_name":   currentSession(c).UserName,
		"event_types": eventOptions(),
	})
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBind(&req); err != nil {
		renderMessage(c, http.StatusBadRequest, "booking", categoryDanger, bindingMessage(err))
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	created, err := h.service.CreateBooking(ctx, currentSession(c), booking.CreateBookingInput{
		Name:      req.Name,
		Location:  req.Location,
		Date:      req.Date,
		EventType: req.EventType,
	})
	if err != nil {
		if isNotAuthenticated(err) {
			redirectToLogin(c)
			return
		}
		renderError(c, "booking", err)
		return
	}

	c.JSON(http.StatusOK, view{
		Page:     "booking_confirmation",
		Message:  "Your booking has been confirmed!",
		Category: categorySuccess,
		Data:     gin.H{"booking": created},
	})
}

func (h *BookingHandler) history(c *gin.Context) {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	bookings, err := h.service.ListBookingsForUser(ctx, currentSession(c))
	if err != nil {
		if isNotAuthenticated(err) {
			redirectToLogin(c)
			return
		}
		renderError(c, "booking_history", err)
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}

	render(c, http.StatusOK, "booking_history", gin.H{"bookings": bookings})
}

func eventOptions() []eventOption {
	types := domain.EventTypes()
	options := make([]eventOption, 0, len(types))
	for _, t := range types {
		options = append(options, eventOption{Type: t, Price: domain.PriceFor(t)})
	}
	return options
}
