package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	dateLayout      = "2006-01-02"
	defaultPageSize = 20
	maxPageSize     = 100
)

type ReservationHandler struct {
	service booking.BookingUseCase
}

type createReservationRequest struct {
	UserID       string `json:"user_id" binding:"required,uuid"`
	RoomID       string `json:"room_id" binding:"required,uuid"`
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	CheckinDate  string `json:"checkin_date" binding:"required"`
	CheckoutDate string `json:"checkout_date" binding:"required"`
}

type updateReservationRequest struct {
	CheckinDate  *string `json:"checkin_date"`
	CheckoutDate *string `json:"checkout_date"`
}

type reservationResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	RoomID       string `json:"room_id"`
	RoomNumber   int    `json:"room_number"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	CheckinDate  string `json:"checkin_date"`
	CheckoutDate string `json:"checkout_date"`
	Status       string `json:"status"`
	Version      int64  `json:"version"`
	CreatedDate  string `json:"created_date"`
	UpdateDate   string `json:"update_date"`
}

func NewReservationHandler(service booking.BookingUseCase) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func (h *ReservationHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.cancel)
}

// RegisterUserRoutes mounts the per-user listing under /users.
func (h *ReservationHandler) RegisterUserRoutes(router *gin.RouterGroup) {
	router.GET("/:id/reservations", h.listByUser)
}

func (h *ReservationHandler) create(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, err.Error())
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeBadRequest(c, "user_id must be a valid uuid")
		return
	}
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		writeBadRequest(c, "room_id must be a valid uuid")
		return
	}
	checkin, err := time.Parse(dateLayout, req.CheckinDate)
	if err != nil {
		writeBadRequest(c, "checkin_date must be formatted as YYYY-MM-DD")
		return
	}
	checkout, err := time.Parse(dateLayout, req.CheckoutDate)
	if err != nil {
		writeBadRequest(c, "checkout_date must be formatted as YYYY-MM-DD")
		return
	}

	res, err := h.service.CreateReservation(c.Request.Context(), booking.CreateReservationInput{
		UserID:       userID,
		RoomID:       roomID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		CheckinDate:  checkin,
		CheckoutDate: checkout,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toReservationResponse(res))
}

func (h *ReservationHandler) update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeBadRequest(c, "invalid reservation id")
		return
	}

	var req updateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, err.Error())
		return
	}

	var input booking.UpdateReservationInput
	if req.CheckinDate != nil {
		checkin, err := time.Parse(dateLayout, *req.CheckinDate)
		if err != nil {
			writeBadRequest(c, "checkin_date must be formatted as YYYY-MM-DD")
			return
		}
		input.CheckinDate = &checkin
	}
	if req.CheckoutDate != nil {
		checkout, err := time.Parse(dateLayout, *req.CheckoutDate)
		if err != nil {
			writeBadRequest(c, "checkout_date must be formatted as YYYY-MM-DD")
			return
		}
		input.CheckoutDate = &checkout
	}

	res, err := h.service.UpdateReservation(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponse(res))
}

func (h *ReservationHandler) cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeBadRequest(c, "invalid reservation id")
		return
	}

	if err := h.service.CancelReservation(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeBadRequest(c, "invalid reservation id")
		return
	}

	res, err := h.service.GetReservationByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponse(res))
}

func (h *ReservationHandler) list(c *gin.Context) {
	page, size, ok := parsePaging(c)
	if !ok {
		return
	}

	reservations, err := h.service.ListReservations(c.Request.Context(), page, size)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponses(reservations))
}

func (h *ReservationHandler) listByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeBadRequest(c, "invalid user id")
		return
	}

	page, size, ok := parsePaging(c)
	if !ok {
		return
	}

	reservations, err := h.service.ListReservationsByUser(c.Request.Context(), userID, page, size)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponses(reservations))
}

func parsePaging(c *gin.Context) (page, size int, ok bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		writeBadRequest(c, "page must be a non-negative integer")
		return 0, 0, false
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultPageSize)))
	if err != nil || size <= 0 {
		writeBadRequest(c, "size must be a positive integer")
		return 0, 0, false
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size, true
}

func toReservationResponse(res *domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:           res.ID.String(),
		UserID:       res.UserID.String(),
		RoomID:       res.RoomID.String(),
		RoomNumber:   res.RoomNumber,
		FirstName:    res.FirstName,
		LastName:     res.LastName,
		CheckinDate:  res.CheckinDate.Format(dateLayout),
		CheckoutDate: res.CheckoutDate.Format(dateLayout),
		Status:       string(res.Status),
		Version:      res.Version,
		CreatedDate:  res.CreatedDate.Format(time.RFC3339),
		UpdateDate:   res.UpdateDate.Format(time.RFC3339),
	}
}

func toReservationResponses(reservations []domain.Reservation) []reservationResponse {
	out := make([]reservationResponse, 0, len(reservations))
	for i := range reservations {
		out = append(out, toReservationResponse(&reservations[i]))
	}
	return out
}
