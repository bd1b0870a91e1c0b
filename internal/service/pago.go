package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/SantiFenochio/FutbolVB/internal/domain"
	"github.com/SantiFenochio/FutbolVB/internal/service/ports"
)

// PagoService applies payment outcomes to reservas. Webhook, return redirect
// and the simulated flow all funnel into Apply, so every entry point shares
// the same transition rules and idempotency.
type PagoService struct {
	reservaRepo ports.ReservaRepo
	canchaRepo  ports.CanchaRepo
	gateway     ports.PaymentGateway
	notifier    ports.ReservaNotifier
	logger      logger.Logger
}

func NewPagoService(
	reservaRepo ports.ReservaRepo,
	canchaRepo ports.CanchaRepo,
	gateway ports.PaymentGateway,
	notifier ports.ReservaNotifier,
	logger logger.Logger,
) *PagoService {
	return &PagoService{
		reservaRepo: reservaRepo,
		canchaRepo:  canchaRepo,
		gateway:     gateway,
		notifier:    notifier,
		logger:      logger,
	}
}

// ProcessWebhook handles a provider notification. Non-payment events are
// acknowledged without side effects (processed=false). For payment events the
// authoritative status is fetched from the provider rather than trusted from
// the notification body. Safe under at-least-once delivery.
func (s *PagoService) ProcessWebhook(ctx context.Context, eventType, paymentID, externalRef string) (bool, error) {
	if eventType != "payment" {
		s.logger.Debug("webhook event ignored",
			logger.String("type", eventType),
		)
		return false, nil
	}

	if paymentID == "" {
		return false, fmt.Errorf("%w: payment id is required", domain.ErrValidation)
	}

	pago, err := s.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		return false, fmt.Errorf("get payment: %w", err)
	}

	reservaID := pago.ExternalReference
	if reservaID == "" {
		reservaID = externalRef
	}
	if reservaID == "" {
		return false, fmt.Errorf("%w: payment %s has no external reference", domain.ErrValidation, paymentID)
	}

	if err = s.Apply(ctx, reservaID, pago.Status, pago.ID); err != nil {
		return false, err
	}

	return true, nil
}

// ProcessRetorno handles the browser coming back from the provider. A
// success return on a still-pendiente reserva confirms synchronously; the
// current reserva is returned for rendering either way.
func (s *PagoService) ProcessRetorno(ctx context.Context, reservaID, status, paymentID string) (*domain.Reserva, error) {
	var providerStatus string
	switch status {
	case "success":
		providerStatus = domain.PagoApproved
	case "failure":
		providerStatus = domain.PagoRejected
	case "pending":
		providerStatus = domain.PagoPending
	default:
		return nil, fmt.Errorf("%w: unknown retorno status %q", domain.ErrValidation, status)
	}

	if err := s.Apply(ctx, reservaID, providerStatus, paymentID); err != nil {
		return nil, err
	}

	return s.reservaRepo.GetByID(ctx, reservaID)
}

// Simulate applies a payment outcome without a live provider. Same mapping
// as the real webhook.
func (s *PagoService) Simulate(ctx context.Context, reservaID, resultado, paymentID string) error {
	switch resultado {
	case "success":
		return s.Apply(ctx, reservaID, domain.PagoApproved, paymentID)
	case "failure":
		return s.Apply(ctx, reservaID, domain.PagoRejected, paymentID)
	default:
		return fmt.Errorf("%w: resultado must be success or failure", domain.ErrValidation)
	}
}

// Apply maps the provider status onto the reserva lifecycle: approved
// confirms, rejected/cancelled cancels, anything else leaves the reserva
// pendiente. Transitions are conditional updates, so applying the same
// terminal status twice changes nothing and sends nothing.
func (s *PagoService) Apply(ctx context.Context, reservaID, providerStatus, paymentID string) error {
	switch domain.MapPagoEstado(providerStatus) {
	case domain.EstadoConfirmada:
		return s.confirmar(ctx, reservaID, paymentID)
	case domain.EstadoCancelada:
		return s.cancelar(ctx, reservaID, providerStatus)
	default:
		s.logger.Info("payment still in flight, reserva left pendiente",
			logger.String("reserva_id", reservaID),
			logger.String("payment_status", providerStatus),
		)
		return nil
	}
}

func (s *PagoService) confirmar(ctx context.Context, reservaID, paymentID string) error {
	reserva, err := s.reservaRepo.GetByID(ctx, reservaID)
	if err != nil {
		return fmt.Errorf("get reserva: %w", err)
	}

	ids := []string{reserva.ID}
	if reserva.SerieID != nil {
		rows, err := s.reservaRepo.ListBySerie(ctx, *reserva.SerieID)
		if err != nil {
			return fmt.Errorf("list serie: %w", err)
		}
		ids = ids[:0]
		for _, r := range rows {
			ids = append(ids, r.ID)
		}
	}

	headTransitioned := false
	for _, id := range ids {
		ok, err := s.reservaRepo.Confirmar(ctx, id, paymentID)
		if err != nil {
			return fmt.Errorf("confirmar reserva %s: %w", id, err)
		}
		if ok && id == reserva.ID {
			headTransitioned = true
		}
	}

	if !headTransitioned {
		s.logger.Info("payment approval replayed, reserva already terminal",
			logger.String("reserva_id", reserva.ID),
			logger.String("estado", string(reserva.Estado)),
		)
		return nil
	}

	s.logger.Info("reserva confirmada",
		logger.String("reserva_id", reserva.ID),
		logger.String("payment_id", paymentID),
	)

	confirmed, err := s.reservaRepo.GetByID(ctx, reserva.ID)
	if err != nil {
		s.logger.Error("failed to reload reserva for notification",
			logger.String("reserva_id", reserva.ID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	cancha, err := s.canchaRepo.GetByID(ctx, confirmed.CanchaID)
	if err != nil {
		s.logger.Error("failed to get cancha for notification",
			logger.Int64("cancha_id", confirmed.CanchaID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyReservaConfirmada(context.WithoutCancel(ctx), confirmed, cancha)

	return nil
}

func (s *PagoService) cancelar(ctx context.Context, reservaID, providerStatus string) error {
	reserva, err := s.reservaRepo.GetByID(ctx, reservaID)
	if err != nil {
		return fmt.Errorf("get reserva: %w", err)
	}

	ids := []string{reserva.ID}
	if reserva.SerieID != nil {
		rows, err := s.reservaRepo.ListBySerie(ctx, *reserva.SerieID)
		if err != nil {
			return fmt.Errorf("list serie: %w", err)
		}
		ids = ids[:0]
		for _, r := range rows {
			ids = append(ids, r.ID)
		}
	}

	for _, id := range ids {
		ok, err := s.reservaRepo.Cancelar(ctx, id)
		if err != nil {
			return fmt.Errorf("cancelar reserva %s: %w", id, err)
		}
		if ok {
			s.logger.Info("reserva cancelada by payment outcome",
				logger.String("reserva_id", id),
				logger.String("payment_status", providerStatus),
			)
		}
	}

	return nil
}
