package domain

import "errors"

var (
	ErrCanchaNotFound  = errors.New("cancha not found")
	ErrReservaNotFound = errors.New("reserva not found")
)

var (
	ErrHorarioOcupado     = errors.New("horario already taken for this cancha and fecha")
	ErrReservaNoPendiente = errors.New("reserva is not in pendiente status")
)

var (
	ErrPagoNoDisponible = errors.New("payment provider unavailable")
)

var (
	ErrValidation = errors.New("validation error")
)
