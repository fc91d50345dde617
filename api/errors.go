package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps service outcomes onto HTTP statuses. Both conflict
// kinds answer 409 with distinct codes so clients can tell a plain
// overlap from an exclusion-constraint backstop.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrRoomNotFound), errors.Is(err, booking.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, apiError{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, booking.ErrBookingConflict):
		c.JSON(http.StatusConflict, apiError{Code: "BOOKING_CONFLICT", Message: err.Error()})
	case errors.Is(err, booking.ErrRoomAlreadyBooked):
		c.JSON(http.StatusConflict, apiError{Code: "ROOM_ALREADY_BOOKED", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidStay):
		c.JSON(http.StatusBadRequest, apiError{Code: "VALIDATION_ERROR", Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, apiError{Code: "INTERNAL_ERROR", Message: "unexpected error"})
	}
}

func writeBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, apiError{Code: "VALIDATION_ERROR", Message: message})
}
