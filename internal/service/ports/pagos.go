package ports

import (
	"context"

	"github.com/SantiFenochio/FutbolVB/internal/domain"
)

type PaymentGateway interface {
	CreatePreference(ctx context.Context, in domain.PreferenciaInput) (*domain.Preferencia, error)
	GetPayment(ctx context.Context, paymentID string) (*domain.Pago, error)
}
