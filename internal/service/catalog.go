package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/SantiFenochio/FutbolVB/internal/domain"
	"github.com/SantiFenochio/FutbolVB/internal/service/ports"
)

type CatalogService struct {
	canchaRepo  ports.CanchaRepo
	reservaRepo ports.ReservaRepo
	logger      logger.Logger
}

func NewCatalogService(canchaRepo ports.CanchaRepo, reservaRepo ports.ReservaRepo, logger logger.Logger) *CatalogService {
	return &CatalogService{
		canchaRepo:  canchaRepo,
		reservaRepo: reservaRepo,
		logger:      logger,
	}
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Cancha, error) {
	return s.canchaRepo.List(ctx)
}

func (s *CatalogService) GetByID(ctx context.Context, id int64) (*domain.Cancha, error) {
	return s.canchaRepo.GetByID(ctx, id)
}

// HorariosOcupados returns the slot labels already held for (cancha, tipo,
// fecha). When the store is unreachable it logs and returns an empty set:
// the page keeps rendering with everything shown available and the atomic
// claim at creation time catches any slot that was actually taken. Fail-open
// is limited to this read path; writes always surface store errors.
func (s *CatalogService) HorariosOcupados(ctx context.Context, canchaID int64, tipo *domain.CanchaTipo, fecha string) ([]string, error) {
	cancha, err := s.canchaRepo.GetByID(ctx, canchaID)
	if err != nil {
		if errors.Is(err, domain.ErrCanchaNotFound) {
			return nil, err
		}
		s.logger.Warn("cancha lookup failed, availability fails open",
			logger.Int64("cancha_id", canchaID),
			logger.String("error", err.Error()),
		)
		return []string{}, nil
	}

	if tipo != nil && cancha.Tipo != domain.TipoMixta {
		return nil, fmt.Errorf("%w: tipo only applies to canchas mixtas", domain.ErrValidation)
	}

	ocupados, err := s.reservaRepo.HorariosOcupados(ctx, canchaID, tipo, fecha)
	if err != nil {
		s.logger.Warn("availability query failed, availability fails open",
			logger.Int64("cancha_id", canchaID),
			logger.String("fecha", fecha),
			logger.String("error", err.Error()),
		)
		return []string{}, nil
	}

	if ocupados == nil {
		ocupados = []string{}
	}
	return ocupados, nil
}
