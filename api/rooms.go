package api

import (
	"context"
	"net/http"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/service/rooms"
	"github.com/gin-gonic/gin"
)

// AvailabilityChecker is the slice of the booking service the room
// endpoints need.
type AvailabilityChecker interface {
	AvailableRooms(ctx context.Context, checkin, checkout time.Time) ([]domain.Room, error)
}

type RoomHandler struct {
	rooms        rooms.RoomUseCase
	availability AvailabilityChecker
}

type roomResponse struct {
	ID         string `json:"id"`
	RoomNumber int    `json:"room_number"`
	Type       string `json:"type"`
}

func NewRoomHandler(roomService rooms.RoomUseCase, availability AvailabilityChecker) *RoomHandler {
	return &RoomHandler{rooms: roomService, availability: availability}
}

func (h *RoomHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/availability", h.listAvailable)
}

func (h *RoomHandler) list(c *gin.Context) {
	allRooms, err := h.rooms.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoomResponses(allRooms))
}

func (h *RoomHandler) listAvailable(c *gin.Context) {
	checkin, err := time.Parse(dateLayout, c.Query("checkin"))
	if err != nil {
		writeBadRequest(c, "checkin must be formatted as YYYY-MM-DD")
		return
	}
	checkout, err := time.Parse(dateLayout, c.Query("checkout"))
	if err != nil {
		writeBadRequest(c, "checkout must be formatted as YYYY-MM-DD")
		return
	}

	available, err := h.availability.AvailableRooms(c.Request.Context(), checkin, checkout)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoomResponses(available))
}

func toRoomResponses(list []domain.Room) []roomResponse {
	out := make([]roomResponse, 0, len(list))
	for _, room := range list {
		out = append(out, roomResponse{ID: room.ID.String(), RoomNumber: room.RoomNumber, Type: string(room.Type)})
	}
	return out
}
