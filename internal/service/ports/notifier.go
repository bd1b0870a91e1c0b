package ports

import (
	"context"

	"github.com/SantiFenochio/FutbolVB/internal/domain"
)

type ReservaNotifier interface {
	NotifyReservaConfirmada(ctx context.Context, reserva *domain.Reserva, cancha *domain.Cancha)
}
