package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/SantiFenochio/FutbolVB/internal/domain"
)

type reservaCanceller interface {
	CancelarVencidas(ctx context.Context) ([]*domain.Reserva, error)
}

// Scheduler periodically releases slots held by pendientes whose payment
// window has expired, so an abandoned checkout does not block its slot.
type Scheduler struct {
	reservaService reservaCanceller
	interval       time.Duration
	logger         logger.Logger
}

func New(
	reservaService reservaCanceller,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservaService: reservaService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("expiry scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("expiry scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.reservaService.CancelarVencidas(ctx)
	if err != nil {
		s.logger.Error("failed to cancel expired reservas",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range cancelled {
		s.logger.Info("reserva expired",
			logger.String("reserva_id", r.ID),
			logger.Int64("cancha_id", r.CanchaID),
			logger.String("fecha", r.Fecha),
			logger.String("horario", r.Horario),
		)
	}
}
