package domain

import (
	"math"
	"time"
)

type ReservaEstado string

const (
	EstadoPendiente  ReservaEstado = "pendiente"
	EstadoConfirmada ReservaEstado = "confirmada"
	EstadoCancelada  ReservaEstado = "cancelada"
)

// ActiveEstados are the statuses that hold a slot. Cancelled rows release it.
var ActiveEstados = []ReservaEstado{EstadoPendiente, EstadoConfirmada}

// FechaLayout is the calendar-date format used across the API and the store.
const FechaLayout = "2006-01-02"

type Reserva struct {
	ID              string        `json:"id"`
	CanchaID        int64         `json:"cancha_id"`
	Tipo            *CanchaTipo   `json:"tipo_seleccionado,omitempty"`
	Fecha           string        `json:"fecha"`
	Horario         string        `json:"horario"`
	JugadorNombre   string        `json:"jugador_nombre"`
	JugadorTelefono string        `json:"jugador_telefono"`
	JugadorEmail    string        `json:"jugador_email"`
	Precio          int64         `json:"precio"`
	Sena            int64         `json:"sena"`
	SenaPagada      bool          `json:"sena_pagada"`
	Comentarios     string        `json:"comentarios,omitempty"`
	Estado          ReservaEstado `json:"estado"`
	SerieID         *string       `json:"serie_id,omitempty"`
	MercadoPagoID   string        `json:"mercadopago_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type CreateReservaInput struct {
	CanchaID        int64
	Tipo            *CanchaTipo
	Fecha           string
	Horario         string
	JugadorNombre   string
	JugadorTelefono string
	JugadorEmail    string
	Comentarios     string
	Semanas         int
}

// ReservaSerie is the outcome of a creation request. A single booking is a
// serie of one. Weekly series claim each week independently: a taken slot on
// week k does not roll back the weeks already created.
type ReservaSerie struct {
	SerieID        string
	Reservas       []*Reserva
	FechasFallidas []string
}

// CalcularSena computes the deposit: 20% of the price, rounded.
func CalcularSena(precio int64) int64 {
	return int64(math.Round(float64(precio) * 0.20))
}
