package email

import (
	"context"

	"github.com/Domenick1991/hotelbooking/internal/kafka"
	"go.uber.org/zap"
)

// Sender is the notification stub driven by the worker. Delivery is a
// log line; a real transport would slot in behind the same method.
type Sender struct {
	logger *zap.Logger
}

func NewSender(logger *zap.Logger) *Sender {
	return &Sender{logger: logger}
}

func (s *Sender) Send(ctx context.Context, event kafka.ReservationEvent) error {
	s.logger.Info("send reservation notification",
		zap.String("type", event.Type),
		zap.String("reservation_id", event.ReservationID.String()),
		zap.String("user_id", event.UserID.String()),
		zap.Int("room_number", event.RoomNumber),
	)
	return nil
}
