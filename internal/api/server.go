package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/sdupi-network/sdupi-token-core/internal/config"
	"github.com/sdupi-network/sdupi-token-core/internal/services"
)

const shutdownTimeout = 10 * time.Second

// Server is the public HTTP surface of the token core. Every route is a
// thin adapter: decode the request, call the service, encode the result.
type Server struct {
	httpServer *http.Server
	svc        *services.Service
}

func New(cfg *config.Config, svc *services.Service) *Server {
	srv := &Server{svc: svc}
	srv.httpServer = &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      srv.routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return srv
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(tracingMiddleware)
	r.Use(instrumentationMiddleware)

	r.Get("/healthcheck", s.healthCheck)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/token", func(r chi.Router) {
			r.Get("/balance", s.balance)
			r.Post("/transfer", s.transfer)
			r.Post("/mint", s.mint)
			r.Post("/burn", s.burn)
		})

		r.Route("/staking", func(r chi.Router) {
			r.Post("/stake", s.stake)
			r.Post("/unstake", s.unstake)
			r.Post("/claim-rewards", s.claimRewards)
			r.Get("/info", s.stakingInfo)
			r.Get("/pool", s.stakingPool)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/pause", s.pause)
			r.Post("/unpause", s.unpause)
			r.Post("/pool", s.updatePool)
			r.Post("/staking-active", s.setStakingActive)
			r.Post("/transfer-ownership", s.transferOwnership)
		})

		r.Get("/stats", s.stats)
		r.Get("/operations", s.operations)
	})

	return r
}

// Start serves until ctx is canceled, then drains in-flight requests before
// returning.
func (s *Server) Start(ctx context.Context) error {
	listenErr := make(chan error, 1)
	go func() {
		log.Info().Str("address", s.httpServer.Addr).Msg("Starting API server")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
			return
		}
		listenErr <- nil
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("failed to serve API: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down API server: %w", err)
	}

	return <-listenErr
}
