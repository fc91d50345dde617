package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reservationColumns = `id, user_id, room_id, room_number, first_name, last_name, checkin_date, checkout_date, status, version, created_date, update_date`

type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	// FindOverlapping returns the ACTIVE reservations on roomID whose
	// [checkin_date, checkout_date) range intersects [checkin, checkout).
	// A non-nil excludeID drops that reservation from the result so an
	// update never conflicts with itself.
	FindOverlapping(ctx context.Context, roomID uuid.UUID, checkin, checkout time.Time, excludeID *uuid.UUID) ([]domain.Reservation, error)
	// Update writes dates and status back with an optimistic version
	// check; ErrVersionConflict if the stored version moved since the read.
	Update(ctx context.Context, res *domain.Reservation) error
	List(ctx context.Context, page, size int) ([]domain.Reservation, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]domain.Reservation, error)
}

type PGReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) ReservationRepository {
	return &PGReservationRepository{pool: pool}
}

func (r *PGReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	err := queryEngine(ctx, r.pool).QueryRow(ctx, `INSERT INTO reservations (id, user_id, room_id, room_number, first_name, last_name, checkin_date, checkout_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING version, created_date, update_date`,
		res.ID, res.UserID, res.RoomID, res.RoomNumber, res.FirstName, res.LastName, res.CheckinDate, res.CheckoutDate, res.Status).
		Scan(&res.Version, &res.CreatedDate, &res.UpdateDate)
	return translateError(err)
}

func (r *PGReservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	row := queryEngine(ctx, r.pool).QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id=$1`, id)
	res, err := scanReservation(row)
	if err != nil {
		return nil, translateError(err)
	}
	return res, nil
}

func (r *PGReservationRepository) FindOverlapping(ctx context.Context, roomID uuid.UUID, checkin, checkout time.Time, excludeID *uuid.UUID) ([]domain.Reservation, error) {
	rows, err := queryEngine(ctx, r.pool).Query(ctx, `SELECT `+reservationColumns+` FROM reservations
		WHERE room_id=$1
		  AND status=$2
		  AND NOT (checkout_date <= $3 OR checkin_date >= $4)
		  AND ($5::uuid IS NULL OR id <> $5)
		ORDER BY checkin_date`,
		roomID, domain.ReservationStatusActive, checkin, checkout, excludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReservations(rows)
}

func (r *PGReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	err := queryEngine(ctx, r.pool).QueryRow(ctx, `UPDATE reservations
		SET checkin_date=$1, checkout_date=$2, status=$3, version=version+1, update_date=now()
		WHERE id=$4 AND version=$5
		RETURNING version, update_date`,
		res.CheckinDate, res.CheckoutDate, res.Status, res.ID, res.Version).
		Scan(&res.Version, &res.UpdateDate)
	if err != nil {
		// The row was loaded inside this same transaction, so zero rows
		// means the version moved, not that the reservation vanished.
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrVersionConflict
		}
		return translateError(err)
	}
	return nil
}

func (r *PGReservationRepository) List(ctx context.Context, page, size int) ([]domain.Reservation, error) {
	rows, err := queryEngine(ctx, r.pool).Query(ctx, `SELECT `+reservationColumns+` FROM reservations
		ORDER BY created_date, id LIMIT $1 OFFSET $2`, size, PageOffset(page, size))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReservations(rows)
}

func (r *PGReservationRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]domain.Reservation, error) {
	rows, err := queryEngine(ctx, r.pool).Query(ctx, `SELECT `+reservationColumns+` FROM reservations
		WHERE user_id=$1 ORDER BY created_date, id LIMIT $2 OFFSET $3`, userID, size, PageOffset(page, size))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReservations(rows)
}

// PageOffset converts a zero-based page to a row offset, clamping
// nonsense input to the first page.
func PageOffset(page, size int) int {
	if page < 0 || size < 0 {
		return 0
	}
	return page * size
}

func scanReservation(row pgx.Row) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := row.Scan(&res.ID, &res.UserID, &res.RoomID, &res.RoomNumber, &res.FirstName, &res.LastName,
		&res.CheckinDate, &res.CheckoutDate, &res.Status, &res.Version, &res.CreatedDate, &res.UpdateDate); err != nil {
		return nil, err
	}
	return &res, nil
}

func collectReservations(rows pgx.Rows) ([]domain.Reservation, error) {
	reservations := make([]domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *res)
	}
	return reservations, rows.Err()
}

var _ ReservationRepository = (*PGReservationRepository)(nil)
