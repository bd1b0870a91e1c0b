package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SantiFenochio/FutbolVB/internal/domain"
	"github.com/SantiFenochio/FutbolVB/internal/service/ports/mocks"
)

func newPagoService(t *testing.T) (*PagoService, *mocks.MockReservaRepo, *mocks.MockCanchaRepo, *mocks.MockPaymentGateway, *mocks.MockReservaNotifier) {
	t.Helper()
	reservaRepo := mocks.NewMockReservaRepo(t)
	canchaRepo := mocks.NewMockCanchaRepo(t)
	gateway := mocks.NewMockPaymentGateway(t)
	notifier := mocks.NewMockReservaNotifier(t)
	svc := NewPagoService(reservaRepo, canchaRepo, gateway, notifier, newTestLogger(t))
	return svc, reservaRepo, canchaRepo, gateway, notifier
}

func pendiente(id string) *domain.Reserva {
	return &domain.Reserva{
		ID:           id,
		CanchaID:     4,
		Fecha:        "2026-09-05",
		Horario:      "19:00",
		JugadorEmail: "santi@example.com",
		Precio:       9000,
		Sena:         1800,
		Estado:       domain.EstadoPendiente,
	}
}

func TestPagoService_ProcessWebhook_NonPaymentIgnored(t *testing.T) {
	svc, _, _, _, _ := newPagoService(t)

	processed, err := svc.ProcessWebhook(context.Background(), "merchant_order", "123", "")

	require.NoError(t, err)
	assert.False(t, processed)
}

func TestPagoService_ProcessWebhook_ApprovedConfirmsAndNotifies(t *testing.T) {
	svc, reservaRepo, canchaRepo, gateway, notifier := newPagoService(t)

	reserva := pendiente("r1")
	confirmed := pendiente("r1")
	confirmed.Estado = domain.EstadoConfirmada
	confirmed.SenaPagada = true
	cancha := testCanchaF5()

	gateway.EXPECT().GetPayment(mock.Anything, "123").Return(&domain.Pago{
		ID:                "123",
		Status:            domain.PagoApproved,
		ExternalReference: "r1",
	}, nil)
	reservaRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reserva, nil).Once()
	reservaRepo.EXPECT().Confirmar(mock.Anything, "r1", "123").Return(true, nil)
	reservaRepo.EXPECT().GetByID(mock.Anything, "r1").Return(confirmed, nil).Once()
	canchaRepo.EXPECT().GetByID(mock.Anything, int64(4)).Return(cancha, nil)
	notifier.EXPECT().NotifyReservaConfirmada(mock.Anything, confirmed, cancha).Return()

	processed, err := svc.ProcessWebhook(context.Background(), "payment", "123", "")

	require.NoError(t, err)
	assert.True(t, processed)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPagoService_ProcessWebhook_ReplayedApprovalIsIdempotent(t *testing.T) {
	svc, reservaRepo, _, gateway, _ := newPagoService(t)

	confirmed := pendiente("r1")
	confirmed.Estado = domain.EstadoConfirmada
	confirmed.SenaPagada = true

	gateway.EXPECT().GetPayment(mock.Anything, "123").Return(&domain.Pago{
		ID:                "123",
		Status:            domain.PagoApproved,
		ExternalReference: "r1",
	}, nil)
	reservaRepo.EXPECT().GetByID(mock.Anything, "r1").Return(confirmed, nil)
	reservaRepo.EXPECT().Confirmar(mock.Anything, "r1", "123").Return(false, nil)
	// no notifier expectation: a replay must not send a second email

	processed, err := svc.ProcessWebhook(context.Background(), "payment", "123", "")

	require.NoError(t, err)
	assert.True(t, processed)
}

func TestPagoService_ProcessWebhook_RejectedCancels(t *testing.T) {
	svc, reservaRepo, _, gateway, _ := newPagoService(t)

	gateway.EXPECT().GetPayment(mock.Anything, "123").Return(&domain.Pago{
		ID:                "123",
		Status:            domain.PagoRejected,
		ExternalReference: "r1",
	}, nil)
	reservaRepo.EXPECT().GetByID(mock.Anything, "r1").Return(pendiente("r1"), nil)
	reservaRepo.EXPECT().Cancelar(mock.Anything, "r1").Return(true, nil)

	processed, err := svc.ProcessWebhook(context.Background(), "payment", "123", "")

	require.NoError(t, err)
	assert.True(t, processed)
}

func TestPagoService_ProcessWebhook_InFlightLeavesPendiente(t *testing.T) {
	svc, _, _, gateway, _ := newPagoService(t)

	gateway.EXPECT().GetPayment(mock.Anything, "123").Return(&domain.Pago{
		ID:                "123",
		Status:            domain.PagoInProcess,
		ExternalReference: "r1",
	}, nil)

	processed, err := svc.ProcessWebhook(context.Background(), "payment", "123", "")

	require.NoError(t, err)
	assert.True(t, processed)
}

func TestPagoService_ProcessWebhook_FallsBackToBodyReference(t *testing.T) {
	svc, reservaRepo, _, gateway, _ := newPagoService(t)

	gateway.EXPECT().GetPayment(mock.Anything, "123").Return(&domain.Pago{
		ID:     "123",
		Status: domain.PagoRejected,
	}, nil)
	reservaRepo.EXPECT().GetByID(mock.Anything, "r1").Return(pendiente("r1"), nil)
	reservaRepo.EXPECT().Cancelar(mock.Anything, "r1").Return(true, nil)

	processed, err := svc.ProcessWebhook(context.Background(), "payment", "123", "r1")

	require.NoError(t, err)
	assert.True(t, processed)
}

func TestPagoService_ProcessWebhook_MissingPaymentID(t *testing.T) {
	svc, _, _, _, _ := newPagoService(t)

	_, err := svc.ProcessWebhook(context.Background(), "payment", "", "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPagoService_ProcessWebhook_GatewayError(t *testing.T) {
	svc, _, _, gateway, _ := newPagoService(t)

	gateway.EXPECT().GetPayment(mock.Anything, "123").Return(nil, errors.New("provider down"))

	_, err := svc.ProcessWebhook(context.Background(), "payment", "123", "")

	assert.Error(t, err)
}

func TestPagoService_ProcessWebhook_SerieConfirmsEveryWeek(t *testing.T) {
	svc, reservaRepo, canchaRepo, gateway, notifier := newPagoService(t)

	serieID := "s1"
	head := pendiente("r1")
	head.SerieID = &serieID
	rows := []*domain.Reserva{head, {ID: "r2", CanchaID: 4, SerieID: &serieID}, {ID: "r3", CanchaID: 4, SerieID: &serieID}}

	confirmed := pendiente("r1")
	confirmed.SerieID = &serieID
	confirmed.Estado = domain.EstadoConfirmada
	confirmed.SenaPagada = true
	cancha := testCanchaF5()

	gateway.EXPECT().GetPayment(mock.Anything, "123").Return(&domain.Pago{
		ID:                "123",
		Status:            domain.PagoApproved,
		ExternalReference: "r1",
	}, nil)
	reservaRepo.EXPECT().GetByID(mock.Anything, "r1").Return(head, nil).Once()
	reservaRepo.EXPECT().ListBySerie(mock.Anything, "s1").Return(rows, nil)
	reservaRepo.EXPECT().Confirmar(mock.Anything, "r1", "123").Return(true, nil)
	reservaRepo.EXPECT().Confirmar(mock.Anything, "r2", "123").Return(true, nil)
	reservaRepo.EXPECT().Confirmar(mock.Anything, "r3", "123").Return(true, nil)
	reservaRepo.EXPECT().GetByID(mock.Anything, "r1").Return(confirmed, nil).Once()
	canchaRepo.EXPECT().GetByID(mock.Anything, int64(4)).Return(cancha, nil)
	notifier.EXPECT().NotifyReservaConfirmada(mock.Anything, confirmed, cancha).Return()

	processed, err := svc.ProcessWebhook(context.Background(), "payment", "123", "")

	require.NoError(t, err)
	assert.True(t, processed)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPagoService_ProcessRetorno_Success(t *testing.T) {
	svc, reservaRepo, canchaRepo, _, notifier := newPagoService(t)

	reserva := pendiente("r1")
	confirmed := pendiente("r1")
	confirmed.Estado = domain.EstadoConfirmada
	confirmed.SenaPagada = true
	cancha := testCanchaF5()

	reservaRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reserva, nil).Once()
	reservaRepo.EXPECT().Confirmar(mock.Anything, "r1", "pay-1").Return(true, nil)
	reservaRepo.EXPECT().GetByID(mock.Anything, "r1").Return(confirmed, nil).Times(2)
	canchaRepo.EXPECT().GetByID(mock.Anything, int64(4)).Return(cancha, nil)
	notifier.EXPECT().NotifyReservaConfirmada(mock.Anything, confirmed, cancha).Return()

	result, err := svc.ProcessRetorno(context.Background(), "r1", "success", "pay-1")

	require.NoError(t, err)
	assert.Equal(t, domain.EstadoConfirmada, result.Estado)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPagoService_ProcessRetorno_Failure(t *testing.T) {
	svc, reservaRepo, _, _, _ := newPagoService(t)

	reserva := pendiente("r1")
	cancelled := pendiente("r1")
	cancelled.Estado = domain.EstadoCancelada

	reservaRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reserva, nil).Once()
	reservaRepo.EXPECT().Cancelar(mock.Anything, "r1").Return(true, nil)
	reservaRepo.EXPECT().GetByID(mock.Anything, "r1").Return(cancelled, nil).Once()

	result, err := svc.ProcessRetorno(context.Background(), "r1", "failure", "pay-1")

	require.NoError(t, err)
	assert.Equal(t, domain.EstadoCancelada, result.Estado)
}

func TestPagoService_ProcessRetorno_PendingLeavesReserva(t *testing.T) {
	svc, reservaRepo, _, _, _ := newPagoService(t)

	reserva := pendiente("r1")
	reservaRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reserva, nil)

	result, err := svc.ProcessRetorno(context.Background(), "r1", "pending", "pay-1")

	require.NoError(t, err)
	assert.Equal(t, domain.EstadoPendiente, result.Estado)
}

func TestPagoService_ProcessRetorno_UnknownStatus(t *testing.T) {
	svc, _, _, _, _ := newPagoService(t)

	_, err := svc.ProcessRetorno(context.Background(), "r1", "weird", "pay-1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPagoService_Simulate_InvalidResultado(t *testing.T) {
	svc, _, _, _, _ := newPagoService(t)

	err := svc.Simulate(context.Background(), "r1", "maybe", "sim-1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMapPagoEstado(t *testing.T) {
	assert.Equal(t, domain.EstadoConfirmada, domain.MapPagoEstado(domain.PagoApproved))
	assert.Equal(t, domain.EstadoCancelada, domain.MapPagoEstado(domain.PagoRejected))
	assert.Equal(t, domain.EstadoCancelada, domain.MapPagoEstado(domain.PagoCancelled))
	assert.Equal(t, domain.EstadoPendiente, domain.MapPagoEstado(domain.PagoPending))
	assert.Equal(t, domain.EstadoPendiente, domain.MapPagoEstado(domain.PagoInProcess))
	assert.Equal(t, domain.EstadoPendiente, domain.MapPagoEstado("something_new"))
}
