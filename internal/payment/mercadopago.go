package payment

import (
	"context"
	"fmt"
	"strconv"
	"time"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/wb-go/wbf/logger"

	"github.com/SantiFenochio/FutbolVB/internal/domain"
)

const currencyARS = "ARS"

type MercadoPagoGateway struct {
	preferences preference.Client
	payments    mppayment.Client
	baseURL     string
	expiration  time.Duration
	logger      logger.Logger
}

// NewMercadoPago builds the gateway. With an empty access token the gateway
// starts disabled and every call reports ErrPagoNoDisponible, which leaves
// the simulated payment flow as the only way to settle a reserva.
func NewMercadoPago(accessToken, baseURL string, expiration time.Duration, log logger.Logger) (*MercadoPagoGateway, error) {
	g := &MercadoPagoGateway{
		baseURL:    baseURL,
		expiration: expiration,
		logger:     log,
	}

	if accessToken == "" {
		log.Warn("mercadopago access token is empty, live payments disabled")
		return g, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	g.preferences = preference.NewClient(cfg)
	g.payments = mppayment.NewClient(cfg)

	return g, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, in domain.PreferenciaInput) (*domain.Preferencia, error) {
	if g.preferences == nil {
		return nil, domain.ErrPagoNoDisponible
	}

	now := time.Now()
	expiresAt := now.Add(g.expiration)

	retorno := func(status string) string {
		return fmt.Sprintf("%s/api/pagos/retorno?reserva=%s&status=%s&payment_id={{payment_id}}",
			g.baseURL, in.ReservaID, status)
	}

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:          in.ReservaID,
				Title:       in.Titulo,
				Description: in.Descripcion,
				Quantity:    1,
				UnitPrice:   float64(in.Monto),
				CurrencyID:  currencyARS,
			},
		},
		Payer: &preference.PayerRequest{
			Email: in.PayerEmail,
		},
		BackURLs: &preference.BackURLsRequest{
			Success: retorno("success"),
			Pending: retorno("pending"),
			Failure: retorno("failure"),
		},
		AutoReturn:         "approved",
		ExternalReference:  in.ReservaID,
		NotificationURL:    g.baseURL + "/api/pagos/webhook",
		Expires:            true,
		ExpirationDateFrom: &now,
		ExpirationDateTo:   &expiresAt,
	}

	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		g.logger.Error("failed to create mercadopago preference",
			logger.String("reserva_id", in.ReservaID),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: create preference: %v", domain.ErrPagoNoDisponible, err)
	}

	return &domain.Preferencia{
		ID:        resp.ID,
		InitPoint: resp.InitPoint,
	}, nil
}

// GetPayment fetches the authoritative payment state. Webhook handling never
// trusts the notification body beyond the payment id.
func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (*domain.Pago, error) {
	if g.payments == nil {
		return nil, domain.ErrPagoNoDisponible
	}

	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid payment id %q", domain.ErrValidation, paymentID)
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: get payment: %v", domain.ErrPagoNoDisponible, err)
	}

	return &domain.Pago{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
	}, nil
}
