package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/SantiFenochio/FutbolVB/internal/domain"
	"github.com/SantiFenochio/FutbolVB/internal/handler/dto"
	hmocks "github.com/SantiFenochio/FutbolVB/internal/handler/mocks"
)

func setupRouter(t *testing.T) (*hmocks.MockCatalogSvc, *hmocks.MockReservaSvc, *hmocks.MockPagoSvc, *hmocks.MockEstadisticasSvc, http.Handler) {
	t.Helper()
	catalogSvc := hmocks.NewMockCatalogSvc(t)
	reservaSvc := hmocks.NewMockReservaSvc(t)
	pagoSvc := hmocks.NewMockPagoSvc(t)
	estadisticasSvc := hmocks.NewMockEstadisticasSvc(t)

	h := NewHandler(catalogSvc, reservaSvc, pagoSvc, estadisticasSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/canchas", h.ListCanchas)
		api.GET("/canchas/:id", h.GetCancha)
		api.GET("/canchas/:id/disponibilidad", h.GetDisponibilidad)
		api.POST("/reservas", h.CreateReserva)
		api.GET("/reservas/:id", h.GetReserva)
		api.POST("/reservas/:id/pago", h.CreatePago)
		api.POST("/pagos/webhook", h.Webhook)
		api.GET("/pagos/retorno", h.Retorno)
		api.GET("/pagos/simular", h.Simular)
		api.GET("/admin/estadisticas", h.GetEstadisticas)
	}

	return catalogSvc, reservaSvc, pagoSvc, estadisticasSvc, r
}

func testCancha() *domain.Cancha {
	f5 := int64(8000)
	f10 := int64(15000)
	return &domain.Cancha{
		ID:        1,
		Nombre:    "Boulevard",
		Tipo:      domain.TipoMixta,
		Precio:    15000,
		PrecioF5:  &f5,
		PrecioF10: &f10,
		Horarios:  []string{"18:00", "19:00"},
		Activa:    true,
	}
}

func testReserva(id string) *domain.Reserva {
	return &domain.Reserva{
		ID:              id,
		CanchaID:        1,
		Fecha:           "2026-09-05",
		Horario:         "19:00",
		JugadorNombre:   "Santiago",
		JugadorTelefono: "2966123456",
		JugadorEmail:    "santi@example.com",
		Precio:          9000,
		Sena:            1800,
		Estado:          domain.EstadoPendiente,
		CreatedAt:       time.Now(),
	}
}

// --- Canchas ---

func TestHandler_ListCanchas(t *testing.T) {
	catalogSvc, _, _, _, r := setupRouter(t)

	catalogSvc.EXPECT().List(mock.Anything).Return([]*domain.Cancha{testCancha()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/canchas", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CanchaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Boulevard", resp[0].Nombre)
	assert.Equal(t, "MIXTA", resp[0].Tipo)
}

func TestHandler_GetCancha_NotFound(t *testing.T) {
	catalogSvc, _, _, _, r := setupRouter(t)

	catalogSvc.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrCanchaNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/canchas/99", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetCancha_BadID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/canchas/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetDisponibilidad(t *testing.T) {
	catalogSvc, _, _, _, r := setupRouter(t)

	tipo := domain.TipoF5
	catalogSvc.EXPECT().HorariosOcupados(mock.Anything, int64(1), &tipo, "2026-09-05").
		Return([]string{"19:00"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/canchas/1/disponibilidad?fecha=2026-09-05&tipo=F5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.DisponibilidadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"19:00"}, resp.HorariosOcupados)
	assert.Equal(t, "F5", resp.Tipo)
}

func TestHandler_GetDisponibilidad_BadFecha(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/canchas/1/disponibilidad?fecha=05-09-2026", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetDisponibilidad_BadTipo(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/canchas/1/disponibilidad?fecha=2026-09-05&tipo=F7", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Reservas ---

func TestHandler_CreateReserva_Single(t *testing.T) {
	_, reservaSvc, _, _, r := setupRouter(t)

	reserva := testReserva(uuid.New().String())
	reservaSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(&domain.ReservaSerie{
		Reservas: []*domain.Reserva{reserva},
	}, nil)

	body, _ := json.Marshal(dto.CreateReservaRequest{
		CanchaID:        1,
		Fecha:           "2026-09-05",
		Horario:         "19:00",
		JugadorNombre:   "Santiago",
		JugadorTelefono: "2966123456",
		JugadorEmail:    "santi@example.com",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/reservas", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, reserva.ID, resp.ID)
	assert.Equal(t, "pendiente", resp.Estado)
	assert.Equal(t, int64(1800), resp.Sena)
}

func TestHandler_CreateReserva_Serie(t *testing.T) {
	_, reservaSvc, _, _, r := setupRouter(t)

	serieID := uuid.New().String()
	r1 := testReserva(uuid.New().String())
	r1.SerieID = &serieID
	r2 := testReserva(uuid.New().String())
	r2.SerieID = &serieID

	reservaSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(&domain.ReservaSerie{
		SerieID:        serieID,
		Reservas:       []*domain.Reserva{r1, r2},
		FechasFallidas: []string{"2026-09-19"},
	}, nil)

	body, _ := json.Marshal(dto.CreateReservaRequest{
		CanchaID:        1,
		Fecha:           "2026-09-05",
		Horario:         "19:00",
		JugadorNombre:   "Santiago",
		JugadorTelefono: "2966123456",
		JugadorEmail:    "santi@example.com",
		Semanas:         3,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/reservas", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservaSerieResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, serieID, resp.SerieID)
	assert.Len(t, resp.Reservas, 2)
	assert.Equal(t, []string{"2026-09-19"}, resp.FechasFallidas)
}

func TestHandler_CreateReserva_SlotTaken(t *testing.T) {
	_, reservaSvc, _, _, r := setupRouter(t)

	reservaSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrHorarioOcupado)

	body, _ := json.Marshal(dto.CreateReservaRequest{
		CanchaID:        1,
		Fecha:           "2026-09-05",
		Horario:         "19:00",
		JugadorNombre:   "Santiago",
		JugadorTelefono: "2966123456",
		JugadorEmail:    "santi@example.com",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/reservas", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateReserva_InvalidBody(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/reservas", bytes.NewReader([]byte(`{"cancha_id": 1}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetReserva(t *testing.T) {
	_, reservaSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	reservaSvc.EXPECT().GetByID(mock.Anything, id).Return(testReserva(id), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/reservas/"+id, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
}

func TestHandler_GetReserva_NotFound(t *testing.T) {
	_, reservaSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	reservaSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrReservaNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/reservas/"+id, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetReserva_BadID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/reservas/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Pagos ---

func TestHandler_CreatePago(t *testing.T) {
	_, reservaSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	reservaSvc.EXPECT().CreatePago(mock.Anything, id).Return(&domain.Preferencia{
		ID:        "pref-1",
		InitPoint: "https://mp.example/init",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/reservas/"+id+"/pago", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.PagoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pref-1", resp.PreferenceID)
	assert.Equal(t, "https://mp.example/init", resp.InitPoint)
}

func TestHandler_CreatePago_NotPendiente(t *testing.T) {
	_, reservaSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	reservaSvc.EXPECT().CreatePago(mock.Anything, id).Return(nil, domain.ErrReservaNoPendiente)

	req := httptest.NewRequest(http.MethodPost, "/api/reservas/"+id+"/pago", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreatePago_GatewayUnavailable(t *testing.T) {
	_, reservaSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	reservaSvc.EXPECT().CreatePago(mock.Anything, id).Return(nil, domain.ErrPagoNoDisponible)

	req := httptest.NewRequest(http.MethodPost, "/api/reservas/"+id+"/pago", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandler_Webhook_Processed(t *testing.T) {
	_, _, pagoSvc, _, r := setupRouter(t)

	pagoSvc.EXPECT().ProcessWebhook(mock.Anything, "payment", "123", "r1").Return(true, nil)

	body := []byte(`{"type":"payment","data":{"id":"123"},"external_reference":"r1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/pagos/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var ack dto.WebhookAck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
	assert.Equal(t, "processed", ack.Status)
}

func TestHandler_Webhook_Ignored(t *testing.T) {
	_, _, pagoSvc, _, r := setupRouter(t)

	pagoSvc.EXPECT().ProcessWebhook(mock.Anything, "merchant_order", "", "").Return(false, nil)

	body := []byte(`{"type":"merchant_order"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/pagos/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var ack dto.WebhookAck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
	assert.Equal(t, "ignored", ack.Status)
}

func TestHandler_Retorno(t *testing.T) {
	_, _, pagoSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	confirmed := testReserva(id)
	confirmed.Estado = domain.EstadoConfirmada
	confirmed.SenaPagada = true

	pagoSvc.EXPECT().ProcessRetorno(mock.Anything, id, "success", "pay-1").Return(confirmed, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/pagos/retorno?reserva="+id+"&status=success&payment_id=pay-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmada", resp.Estado)
	assert.True(t, resp.SenaPagada)
}

func TestHandler_Simular_RedirectsToRetorno(t *testing.T) {
	_, _, pagoSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	pagoSvc.EXPECT().Simulate(mock.Anything, id, "success", mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/pagos/simular?reserva="+id, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/api/pagos/retorno?reserva="+id)
	assert.Contains(t, w.Header().Get("Location"), "status=success")
}

func TestHandler_Simular_Failure(t *testing.T) {
	_, _, pagoSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	pagoSvc.EXPECT().Simulate(mock.Anything, id, "failure", mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/pagos/simular?reserva="+id+"&resultado=failure", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "status=failure")
}

// --- Admin ---

func TestHandler_GetEstadisticas(t *testing.T) {
	_, _, _, estadisticasSvc, r := setupRouter(t)

	estadisticasSvc.EXPECT().Estadisticas(mock.Anything).Return(&domain.Estadisticas{
		TotalReservas:   2,
		IngresosTotales: 23000,
		SenasRecaudadas: 4600,
		CanchasMasPopulares: []domain.CanchaPopularidad{
			{Nombre: "Boulevard F10", Reservas: 1},
			{Nombre: "La Calle F10", Reservas: 1},
		},
		ReservasPorDia: []domain.ReservasDia{
			{Fecha: "2026-09-05", Cantidad: 2},
		},
		OcupacionPromedio: 50,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/estadisticas", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.EstadisticasResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalReservas)
	assert.Equal(t, int64(23000), resp.IngresosTotales)
	assert.Equal(t, 50, resp.OcupacionPromedio)
}

func TestHandler_GetEstadisticas_Error(t *testing.T) {
	_, _, _, estadisticasSvc, r := setupRouter(t)

	estadisticasSvc.EXPECT().Estadisticas(mock.Anything).Return(nil, errors.New("db down"))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/estadisticas", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
