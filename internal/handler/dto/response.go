package dto

import (
	"time"

	"github.com/SantiFenochio/FutbolVB/internal/domain"
)

type CanchaResponse struct {
	ID              int64    `json:"id"`
	Nombre          string   `json:"nombre"`
	Tipo            string   `json:"tipo"`
	Precio          int64    `json:"precio"`
	PrecioF5        *int64   `json:"precio_f5,omitempty"`
	PrecioF10       *int64   `json:"precio_f10,omitempty"`
	Descripcion     string   `json:"descripcion"`
	Capacidad       string   `json:"capacidad"`
	Caracteristicas []string `json:"caracteristicas"`
	Horarios        []string `json:"horarios"`
	ImagenURL       string   `json:"imagen_url"`
}

type DisponibilidadResponse struct {
	CanchaID         int64    `json:"cancha_id"`
	Fecha            string   `json:"fecha"`
	Tipo             string   `json:"tipo,omitempty"`
	HorariosOcupados []string `json:"horarios_ocupados"`
}

type ReservaResponse struct {
	ID              string `json:"id"`
	CanchaID        int64  `json:"cancha_id"`
	Tipo            string `json:"tipo_seleccionado,omitempty"`
	Fecha           string `json:"fecha"`
	Horario         string `json:"horario"`
	JugadorNombre   string `json:"jugador_nombre"`
	JugadorTelefono string `json:"jugador_telefono"`
	JugadorEmail    string `json:"jugador_email"`
	Precio          int64  `json:"precio"`
	Sena            int64  `json:"sena"`
	SenaPagada      bool   `json:"sena_pagada"`
	Comentarios     string `json:"comentarios,omitempty"`
	Estado          string `json:"estado"`
	SerieID         string `json:"serie_id,omitempty"`
	CreatedAt       string `json:"created_at"`
}

type ReservaSerieResponse struct {
	SerieID        string            `json:"serie_id,omitempty"`
	Reservas       []ReservaResponse `json:"reservas"`
	FechasFallidas []string          `json:"fechas_fallidas,omitempty"`
}

type PagoResponse struct {
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}

type WebhookAck struct {
	Status string `json:"status"`
}

type EstadisticasResponse struct {
	TotalReservas       int                        `json:"total_reservas"`
	IngresosTotales     int64                      `json:"ingresos_totales"`
	SenasRecaudadas     int64                      `json:"senas_recaudadas"`
	CanchasMasPopulares []domain.CanchaPopularidad `json:"canchas_mas_populares"`
	ReservasPorDia      []domain.ReservasDia       `json:"reservas_por_dia"`
	OcupacionPromedio   int                        `json:"ocupacion_promedio"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToCanchaResponse(c *domain.Cancha) CanchaResponse {
	return CanchaResponse{
		ID:              c.ID,
		Nombre:          c.Nombre,
		Tipo:            string(c.Tipo),
		Precio:          c.Precio,
		PrecioF5:        c.PrecioF5,
		PrecioF10:       c.PrecioF10,
		Descripcion:     c.Descripcion,
		Capacidad:       c.Capacidad,
		Caracteristicas: c.Caracteristicas,
		Horarios:        c.Horarios,
		ImagenURL:       c.ImagenURL,
	}
}

func ToReservaResponse(r *domain.Reserva) ReservaResponse {
	resp := ReservaResponse{
		ID:              r.ID,
		CanchaID:        r.CanchaID,
		Fecha:           r.Fecha,
		Horario:         r.Horario,
		JugadorNombre:   r.JugadorNombre,
		JugadorTelefono: r.JugadorTelefono,
		JugadorEmail:    r.JugadorEmail,
		Precio:          r.Precio,
		Sena:            r.Sena,
		SenaPagada:      r.SenaPagada,
		Comentarios:     r.Comentarios,
		Estado:          string(r.Estado),
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
	if r.Tipo != nil {
		resp.Tipo = string(*r.Tipo)
	}
	if r.SerieID != nil {
		resp.SerieID = *r.SerieID
	}
	return resp
}

func ToReservaSerieResponse(s *domain.ReservaSerie) ReservaSerieResponse {
	reservas := make([]ReservaResponse, 0, len(s.Reservas))
	for _, r := range s.Reservas {
		reservas = append(reservas, ToReservaResponse(r))
	}

	return ReservaSerieResponse{
		SerieID:        s.SerieID,
		Reservas:       reservas,
		FechasFallidas: s.FechasFallidas,
	}
}

func ToEstadisticasResponse(e *domain.Estadisticas) EstadisticasResponse {
	return EstadisticasResponse{
		TotalReservas:       e.TotalReservas,
		IngresosTotales:     e.IngresosTotales,
		SenasRecaudadas:     e.SenasRecaudadas,
		CanchasMasPopulares: e.CanchasMasPopulares,
		ReservasPorDia:      e.ReservasPorDia,
		OcupacionPromedio:   e.OcupacionPromedio,
	}
}
