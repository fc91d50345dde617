package rooms

import (
	"context"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomUseCase interface {
	List(ctx context.Context) ([]domain.Room, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
}

// Cache holds the room inventory snapshot. Rooms are immutable, so a
// short TTL is purely a bound on staleness after out-of-band seeding.
type Cache interface {
	GetRooms(ctx context.Context) ([]domain.Room, error)
	SetRooms(ctx context.Context, rooms []domain.Room) error
}

type RoomService struct {
	repo   repository.RoomRepository
	cache  Cache
	logger *zap.Logger
}

func NewRoomService(repo repository.RoomRepository, cache Cache, logger *zap.Logger) *RoomService {
	return &RoomService{repo: repo, cache: cache, logger: logger}
}

func (s *RoomService) List(ctx context.Context) ([]domain.Room, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetRooms(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetRooms(ctx, rooms); err != nil {
			s.logger.Warn("cache rooms failed", zap.Error(err))
		}
	}
	return rooms, nil
}

func (s *RoomService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	return s.repo.GetByID(ctx, id)
}

var _ RoomUseCase = (*RoomService)(nil)
