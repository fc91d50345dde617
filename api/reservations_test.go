package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase.
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreateReservation(ctx context.Context, input booking.CreateReservationInput) (*domain.Reservation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockBookingUseCase) UpdateReservation(ctx context.Context, id uuid.UUID, input booking.UpdateReservationInput) (*domain.Reservation, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockBookingUseCase) CancelReservation(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingUseCase) GetReservationByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockBookingUseCase) ListReservations(ctx context.Context, page, size int) ([]domain.Reservation, error) {
	args := m.Called(ctx, page, size)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockBookingUseCase) ListReservationsByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]domain.Reservation, error) {
	args := m.Called(ctx, userID, page, size)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockBookingUseCase) AvailableRooms(ctx context.Context, checkin, checkout time.Time) ([]domain.Room, error) {
	args := m.Called(ctx, checkin, checkout)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func testReservation(id uuid.UUID) *domain.Reservation {
	return &domain.Reservation{
		ID:           id,
		UserID:       uuid.New(),
		RoomID:       uuid.New(),
		RoomNumber:   101,
		FirstName:    "Alice",
		LastName:     "Smith",
		CheckinDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckoutDate: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		Status:       domain.ReservationStatusActive,
		Version:      1,
		CreatedDate:  time.Now().UTC(),
		UpdateDate:   time.Now().UTC(),
	}
}

func TestReservationHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewReservationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	res := testReservation(uuid.New())
	body, _ := json.Marshal(createReservationRequest{
		UserID:       res.UserID.String(),
		RoomID:       res.RoomID.String(),
		FirstName:    "Alice",
		LastName:     "Smith",
		CheckinDate:  "2025-01-01",
		CheckoutDate: "2025-01-03",
	})
	c.Request = httptest.NewRequest("POST", "/reservations", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("CreateReservation", c.Request.Context(), mock.AnythingOfType("booking.CreateReservationInput")).
		Return(res, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response reservationResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, res.ID.String(), response.ID)
	assert.Equal(t, "2025-01-01", response.CheckinDate)
	assert.Equal(t, "ACTIVE", response.Status)

	mockService.AssertExpectations(t)
}

func TestReservationHandler_create_conflict(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewReservationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(createReservationRequest{
		UserID:       uuid.New().String(),
		RoomID:       uuid.New().String(),
		FirstName:    "Alice",
		LastName:     "Smith",
		CheckinDate:  "2025-01-01",
		CheckoutDate: "2025-01-03",
	})
	c.Request = httptest.NewRequest("POST", "/reservations", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("CreateReservation", c.Request.Context(), mock.Anything).
		Return(nil, booking.ErrBookingConflict)

	handler.create(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var response apiError
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "BOOKING_CONFLICT", response.Code)
}

func TestReservationHandler_create_exclusionBackstop(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewReservationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(createReservationRequest{
		UserID:       uuid.New().String(),
		RoomID:       uuid.New().String(),
		FirstName:    "Alice",
		LastName:     "Smith",
		CheckinDate:  "2025-01-01",
		CheckoutDate: "2025-01-03",
	})
	c.Request = httptest.NewRequest("POST", "/reservations", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("CreateReservation", c.Request.Context(), mock.Anything).
		Return(nil, booking.ErrRoomAlreadyBooked)

	handler.create(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var response apiError
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ROOM_ALREADY_BOOKED", response.Code)
}

func TestReservationHandler_create_badDate(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewReservationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(createReservationRequest{
		UserID:       uuid.New().String(),
		RoomID:       uuid.New().String(),
		FirstName:    "Alice",
		LastName:     "Smith",
		CheckinDate:  "01/01/2025",
		CheckoutDate: "2025-01-03",
	})
	c.Request = httptest.NewRequest("POST", "/reservations", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreateReservation", mock.Anything, mock.Anything)
}

func TestReservationHandler_get_notFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewReservationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	id := uuid.New()
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	c.Request = httptest.NewRequest("GET", "/reservations/"+id.String(), nil)

	mockService.On("GetReservationByID", c.Request.Context(), id).
		Return(nil, booking.ErrReservationNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response apiError
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "NOT_FOUND", response.Code)
}

func TestReservationHandler_update(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewReservationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	id := uuid.New()
	checkout := "2025-01-04"
	body, _ := json.Marshal(updateReservationRequest{CheckoutDate: &checkout})
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	c.Request = httptest.NewRequest("PUT", "/reservations/"+id.String(), bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	res := testReservation(id)
	res.CheckoutDate = time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)
	mockService.On("UpdateReservation", c.Request.Context(), id, mock.MatchedBy(func(input booking.UpdateReservationInput) bool {
		return input.CheckinDate == nil && input.CheckoutDate != nil
	})).Return(res, nil)

	handler.update(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response reservationResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "2025-01-04", response.CheckoutDate)
	mockService.AssertExpectations(t)
}

func TestReservationHandler_cancel(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewReservationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	id := uuid.New()
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	c.Request = httptest.NewRequest("DELETE", "/reservations/"+id.String(), nil)

	mockService.On("CancelReservation", c.Request.Context(), id).Return(nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}

func TestReservationHandler_list_paging(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewReservationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/reservations?page=2&size=5", nil)

	mockService.On("ListReservations", c.Request.Context(), 2, 5).
		Return([]domain.Reservation{*testReservation(uuid.New())}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestReservationHandler_list_badPaging(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewReservationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/reservations?page=-1", nil)

	handler.list(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "ListReservations", mock.Anything, mock.Anything, mock.Anything)
}

func TestReservationHandler_listByUser(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewReservationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	userID := uuid.New()
	c.Params = gin.Params{{Key: "id", Value: userID.String()}}
	c.Request = httptest.NewRequest("GET", "/users/"+userID.String()+"/reservations", nil)

	mockService.On("ListReservationsByUser", c.Request.Context(), userID, 0, defaultPageSize).
		Return([]domain.Reservation{}, nil)

	handler.listByUser(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
