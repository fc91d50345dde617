package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/hotelbooking/api"
	"github.com/Domenick1991/hotelbooking/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Run starts the HTTP server and blocks until ctx is canceled or the
// server fails. Shutdown drains in-flight requests for up to 5 seconds.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger, reservations *api.ReservationHandler, rooms *api.RoomHandler) error {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	reservations.Register(router.Group("/reservations"))
	reservations.RegisterUserRoutes(router.Group("/users"))
	rooms.Register(router.Group("/rooms"))

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()
	logger.Info("http server listening", zap.String("address", cfg.HTTP.Address))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
