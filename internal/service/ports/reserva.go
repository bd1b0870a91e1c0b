package ports

import (
	"context"
	"time"

	"github.com/SantiFenochio/FutbolVB/internal/domain"
)

type ReservaRepo interface {
	Create(ctx context.Context, r *domain.Reserva) error
	GetByID(ctx context.Context, id string) (*domain.Reserva, error)
	ListBySerie(ctx context.Context, serieID string) ([]*domain.Reserva, error)
	HorariosOcupados(ctx context.Context, canchaID int64, tipo *domain.CanchaTipo, fecha string) ([]string, error)
	// Confirmar performs the pendiente->confirmada transition and marks the
	// deposit paid. Returns false when the reserva was already terminal, so
	// replayed payment notifications stay side-effect free.
	Confirmar(ctx context.Context, id, mercadopagoID string) (bool, error)
	// Cancelar performs the pendiente->cancelada transition. Terminal rows
	// are left untouched and reported as false.
	Cancelar(ctx context.Context, id string) (bool, error)
	CancelarVencidas(ctx context.Context, ventana time.Duration) ([]*domain.Reserva, error)
	ListResumen(ctx context.Context) ([]*domain.ReservaResumen, error)
}
