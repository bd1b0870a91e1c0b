package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/SantiFenochio/FutbolVB/internal/domain"
	"github.com/SantiFenochio/FutbolVB/internal/handler/dto"
)

type CatalogSvc interface {
	List(ctx context.Context) ([]*domain.Cancha, error)
	GetByID(ctx context.Context, id int64) (*domain.Cancha, error)
	HorariosOcupados(ctx context.Context, canchaID int64, tipo *domain.CanchaTipo, fecha string) ([]string, error)
}

type ReservaSvc interface {
	Create(ctx context.Context, input domain.CreateReservaInput) (*domain.ReservaSerie, error)
	GetByID(ctx context.Context, id string) (*domain.Reserva, error)
	CreatePago(ctx context.Context, reservaID string) (*domain.Preferencia, error)
}

type PagoSvc interface {
	ProcessWebhook(ctx context.Context, eventType, paymentID, externalRef string) (bool, error)
	ProcessRetorno(ctx context.Context, reservaID, status, paymentID string) (*domain.Reserva, error)
	Simulate(ctx context.Context, reservaID, resultado, paymentID string) error
}

type EstadisticasSvc interface {
	Estadisticas(ctx context.Context) (*domain.Estadisticas, error)
}

type Handler struct {
	catalogService      CatalogSvc
	reservaService      ReservaSvc
	pagoService         PagoSvc
	estadisticasService EstadisticasSvc
}

func NewHandler(catalogService CatalogSvc, reservaService ReservaSvc, pagoService PagoSvc, estadisticasService EstadisticasSvc) *Handler {
	return &Handler{
		catalogService:      catalogService,
		reservaService:      reservaService,
		pagoService:         pagoService,
		estadisticasService: estadisticasService,
	}
}

// Canchas

func (h *Handler) ListCanchas(c *ginext.Context) {
	canchas, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CanchaResponse, 0, len(canchas))
	for _, cancha := range canchas {
		resp = append(resp, dto.ToCanchaResponse(cancha))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetCancha(c *ginext.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid cancha id"})
		return
	}

	cancha, err := h.catalogService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCanchaResponse(cancha))
}

func (h *Handler) GetDisponibilidad(c *ginext.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid cancha id"})
		return
	}

	fecha := c.Query("fecha")
	if _, err := time.Parse(domain.FechaLayout, fecha); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid fecha, expected YYYY-MM-DD"})
		return
	}

	tipo, err := parseTipo(c.Query("tipo"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ocupados, err := h.catalogService.HorariosOcupados(c.Request.Context(), id, tipo, fecha)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.DisponibilidadResponse{
		CanchaID:         id,
		Fecha:            fecha,
		HorariosOcupados: ocupados,
	}
	if tipo != nil {
		resp.Tipo = string(*tipo)
	}

	c.JSON(http.StatusOK, resp)
}

// Reservas

func (h *Handler) CreateReserva(c *ginext.Context) {
	var req dto.CreateReservaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	tipo, err := parseTipo(req.Tipo)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateReservaInput{
		CanchaID:        req.CanchaID,
		Tipo:            tipo,
		Fecha:           req.Fecha,
		Horario:         req.Horario,
		JugadorNombre:   req.JugadorNombre,
		JugadorTelefono: req.JugadorTelefono,
		JugadorEmail:    req.JugadorEmail,
		Comentarios:     req.Comentarios,
		Semanas:         req.Semanas,
	}

	serie, err := h.reservaService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if serie.SerieID == "" {
		c.JSON(http.StatusCreated, dto.ToReservaResponse(serie.Reservas[0]))
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservaSerieResponse(serie))
}

func (h *Handler) GetReserva(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reserva id"})
		return
	}

	reserva, err := h.reservaService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservaResponse(reserva))
}

// Pagos

func (h *Handler) CreatePago(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reserva id"})
		return
	}

	pref, err := h.reservaService.CreatePago(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.PagoResponse{
		PreferenceID: pref.ID,
		InitPoint:    pref.InitPoint,
	})
}

func (h *Handler) Webhook(c *ginext.Context) {
	var req dto.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	processed, err := h.pagoService.ProcessWebhook(c.Request.Context(), req.Type, req.Data.ID, req.ExternalReference)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := "ignored"
	if processed {
		status = "processed"
	}

	c.JSON(http.StatusOK, dto.WebhookAck{Status: status})
}

func (h *Handler) Retorno(c *ginext.Context) {
	reservaID := c.Query("reserva")
	if _, err := uuid.Parse(reservaID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reserva id"})
		return
	}

	reserva, err := h.pagoService.ProcessRetorno(c.Request.Context(), reservaID, c.Query("status"), c.Query("payment_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservaResponse(reserva))
}

func (h *Handler) Simular(c *ginext.Context) {
	reservaID := c.Query("reserva")
	if _, err := uuid.Parse(reservaID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reserva id"})
		return
	}

	resultado := c.Query("resultado")
	if resultado == "" {
		resultado = "success"
	}

	paymentID := fmt.Sprintf("sim_%d", time.Now().UnixMilli())
	if err := h.pagoService.Simulate(c.Request.Context(), reservaID, resultado, paymentID); err != nil {
		h.handleError(c, err)
		return
	}

	status := "success"
	if resultado == "failure" {
		status = "failure"
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/api/pagos/retorno?reserva=%s&status=%s&payment_id=%s", reservaID, status, paymentID))
}

// Admin

func (h *Handler) GetEstadisticas(c *ginext.Context) {
	stats, err := h.estadisticasService.Estadisticas(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEstadisticasResponse(stats))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrCanchaNotFound),
		errors.Is(err, domain.ErrReservaNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrHorarioOcupado),
		errors.Is(err, domain.ErrReservaNoPendiente):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPagoNoDisponible):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func parseTipo(raw string) (*domain.CanchaTipo, error) {
	switch raw {
	case "":
		return nil, nil
	case string(domain.TipoF5):
		t := domain.TipoF5
		return &t, nil
	case string(domain.TipoF10):
		t := domain.TipoF10
		return &t, nil
	default:
		return nil, errors.New("tipo must be F5 or F10")
	}
}
