package repository

import (
	"context"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomRepository interface {
	List(ctx context.Context) ([]domain.Room, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
	// GetByIDForUpdate locks the room row exclusively for the rest of the
	// surrounding transaction, serializing concurrent creates on the room.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Room, error)
}

type PGRoomRepository struct {
	pool *pgxpool.Pool
}

func NewRoomRepository(pool *pgxpool.Pool) RoomRepository {
	return &PGRoomRepository{pool: pool}
}

func (r *PGRoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	rows, err := queryEngine(ctx, r.pool).Query(ctx, `SELECT id, room_number, room_type FROM rooms ORDER BY room_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.RoomNumber, &room.Type); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (r *PGRoomRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	return r.get(ctx, `SELECT id, room_number, room_type FROM rooms WHERE id=$1`, id)
}

func (r *PGRoomRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	return r.get(ctx, `SELECT id, room_number, room_type FROM rooms WHERE id=$1 FOR UPDATE`, id)
}

func (r *PGRoomRepository) get(ctx context.Context, query string, id uuid.UUID) (*domain.Room, error) {
	row := queryEngine(ctx, r.pool).QueryRow(ctx, query, id)
	var room domain.Room
	if err := row.Scan(&room.ID, &room.RoomNumber, &room.Type); err != nil {
		return nil, translateError(err)
	}
	return &room, nil
}

var _ RoomRepository = (*PGRoomRepository)(nil)
