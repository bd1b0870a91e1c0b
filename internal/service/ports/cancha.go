package ports

import (
	"context"

	"github.com/SantiFenochio/FutbolVB/internal/domain"
)

type CanchaRepo interface {
	List(ctx context.Context) ([]*domain.Cancha, error)
	GetByID(ctx context.Context, id int64) (*domain.Cancha, error)
}
