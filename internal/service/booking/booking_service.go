package booking

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/kafka"
	"github.com/Domenick1991/hotelbooking/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingUseCase interface {
	CreateReservation(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error)
	UpdateReservation(ctx context.Context, id uuid.UUID, input UpdateReservationInput) (*domain.Reservation, error)
	CancelReservation(ctx context.Context, id uuid.UUID) error
	GetReservationByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	ListReservations(ctx context.Context, page, size int) ([]domain.Reservation, error)
	ListReservationsByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]domain.Reservation, error)
	AvailableRooms(ctx context.Context, checkin, checkout time.Time) ([]domain.Room, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// BookingService owns the reservation lifecycle. Every mutating operation
// runs inside one transaction; conflicts are decided by the ACTIVE-overlap
// query first and backstopped by the storage exclusion constraint, whose
// failure is re-signaled here as a typed outcome. The service never
// retries; callers decide on resubmission.
type BookingService struct {
	tx                 repository.TxManager
	reservations       repository.ReservationRepository
	rooms              repository.RoomRepository
	producer           Producer
	reservationsTopic  string
	notificationsTopic string
	logger             *zap.Logger
}

type CreateReservationInput struct {
	UserID       uuid.UUID
	RoomID       uuid.UUID
	FirstName    string
	LastName     string
	CheckinDate  time.Time
	CheckoutDate time.Time
}

// UpdateReservationInput carries new dates; nil fields keep the stored
// value. The room itself is never reassigned by an update.
type UpdateReservationInput struct {
	CheckinDate  *time.Time
	CheckoutDate *time.Time
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	tx repository.TxManager,
	reservations repository.ReservationRepository,
	rooms repository.RoomRepository,
	producer Producer,
	reservationsTopic string,
	logger *zap.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		tx:                tx,
		reservations:      reservations,
		rooms:             rooms,
		producer:          producer,
		reservationsTopic: reservationsTopic,
		logger:            logger,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateReservation(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error) {
	if err := domain.ValidateStay(input.CheckinDate, input.CheckoutDate); err != nil {
		return nil, err
	}

	var created *domain.Reservation
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		// Exclusive lock on the room row serializes concurrent creates for
		// the same room until this transaction ends.
		room, err := s.rooms.GetByIDForUpdate(ctx, input.RoomID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		conflicts, err := s.reservations.FindOverlapping(ctx, room.ID, input.CheckinDate, input.CheckoutDate, nil)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return ErrBookingConflict
		}

		res := &domain.Reservation{
			ID:           uuid.New(),
			UserID:       input.UserID,
			RoomID:       room.ID,
			RoomNumber:   room.RoomNumber,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			CheckinDate:  input.CheckinDate,
			CheckoutDate: input.CheckoutDate,
			Status:       domain.ReservationStatusActive,
		}
		if err := s.reservations.Create(ctx, res); err != nil {
			return s.classifyWriteFailure(err)
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "reservation_created", created)
	return created, nil
}

func (s *BookingService) UpdateReservation(ctx context.Context, id uuid.UUID, input UpdateReservationInput) (*domain.Reservation, error) {
	var updated *domain.Reservation
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.reservations.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		checkin := existing.CheckinDate
		if input.CheckinDate != nil {
			checkin = *input.CheckinDate
		}
		checkout := existing.CheckoutDate
		if input.CheckoutDate != nil {
			checkout = *input.CheckoutDate
		}
		if err := domain.ValidateStay(checkin, checkout); err != nil {
			return err
		}

		conflicts, err := s.reservations.FindOverlapping(ctx, existing.RoomID, checkin, checkout, &existing.ID)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return ErrBookingConflict
		}

		existing.CheckinDate = checkin
		existing.CheckoutDate = checkout
		if err := s.reservations.Update(ctx, existing); err != nil {
			return s.classifyWriteFailure(err)
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "reservation_updated", updated)
	return updated, nil
}

func (s *BookingService) CancelReservation(ctx context.Context, id uuid.UUID) error {
	var cancelled *domain.Reservation
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.reservations.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if existing.Status == domain.ReservationStatusCancelled {
			// Re-cancel is a no-op success.
			return nil
		}

		existing.Status = domain.ReservationStatusCancelled
		if err := s.reservations.Update(ctx, existing); err != nil {
			return s.classifyWriteFailure(err)
		}
		cancelled = existing
		return nil
	})
	if err != nil {
		return err
	}

	if cancelled != nil {
		s.publish(ctx, "reservation_cancelled", cancelled)
	}
	return nil
}

func (s *BookingService) GetReservationByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return res, nil
}

func (s *BookingService) ListReservations(ctx context.Context, page, size int) ([]domain.Reservation, error) {
	return s.reservations.List(ctx, page, size)
}

func (s *BookingService) ListReservationsByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]domain.Reservation, error) {
	return s.reservations.ListByUser(ctx, userID, page, size)
}

// AvailableRooms reports every room with no ACTIVE reservation overlapping
// [checkin, checkout). Read-only, no locks taken; result order follows the
// room listing order (room number).
func (s *BookingService) AvailableRooms(ctx context.Context, checkin, checkout time.Time) ([]domain.Room, error) {
	if err := domain.ValidateStay(checkin, checkout); err != nil {
		return nil, err
	}

	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]domain.Room, 0, len(rooms))
	for _, room := range rooms {
		conflicts, err := s.reservations.FindOverlapping(ctx, room.ID, checkin, checkout, nil)
		if err != nil {
			return nil, err
		}
		if len(conflicts) == 0 {
			available = append(available, room)
		}
	}
	return available, nil
}

// classifyWriteFailure re-signals a storage write failure as a typed
// outcome: a lost optimistic race means the caller should reread and
// resubmit, an exclusion violation means a concurrent transaction beat the
// overlap check to the commit. Anything else propagates unchanged.
func (s *BookingService) classifyWriteFailure(err error) error {
	switch {
	case errors.Is(err, repository.ErrVersionConflict):
		return ErrBookingConflict
	case errors.Is(err, repository.ErrExclusionViolation):
		return ErrRoomAlreadyBooked
	}
	return err
}

func (s *BookingService) publish(ctx context.Context, eventType string, res *domain.Reservation) {
	if s.producer == nil || s.reservationsTopic == "" {
		return
	}
	event := kafka.ReservationEvent{
		Type:          eventType,
		ReservationID: res.ID,
		UserID:        res.UserID,
		RoomID:        res.RoomID,
		RoomNumber:    res.RoomNumber,
		CheckinDate:   res.CheckinDate,
		CheckoutDate:  res.CheckoutDate,
		Status:        string(res.Status),
	}
	if err := s.producer.Publish(ctx, s.reservationsTopic, res.ID.String(), event); err != nil {
		s.logger.Warn("publish reservation event failed",
			zap.String("type", eventType), zap.String("reservation_id", res.ID.String()), zap.Error(err))
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, res.ID.String(), event); err != nil {
			s.logger.Warn("publish notification event failed",
				zap.String("type", eventType), zap.String("reservation_id", res.ID.String()), zap.Error(err))
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
