package domain

import "time"

type CanchaTipo string

const (
	TipoF5    CanchaTipo = "F5"
	TipoF10   CanchaTipo = "F10"
	TipoMixta CanchaTipo = "MIXTA"
)

// Cancha is a bookable pitch. MIXTA canchas can be booked either as F5 or
// F10 with independent pricing and occupancy.
type Cancha struct {
	ID              int64      `json:"id"`
	Nombre          string     `json:"nombre"`
	Tipo            CanchaTipo `json:"tipo"`
	Precio          int64      `json:"precio"`
	PrecioF5        *int64     `json:"precio_f5,omitempty"`
	PrecioF10       *int64     `json:"precio_f10,omitempty"`
	Descripcion     string     `json:"descripcion"`
	Capacidad       string     `json:"capacidad"`
	Caracteristicas []string   `json:"caracteristicas"`
	Horarios        []string   `json:"horarios"`
	ImagenURL       string     `json:"imagen_url"`
	Activa          bool       `json:"activa"`
	CreatedAt       time.Time  `json:"created_at"`
}

// TieneHorario reports whether h is one of the cancha's fixed slot labels.
// The slot list is the universe of bookable times for the cancha.
func (c *Cancha) TieneHorario(h string) bool {
	for _, hor := range c.Horarios {
		if hor == h {
			return true
		}
	}
	return false
}

// PrecioPara resolves the price for the selected tipo. For MIXTA canchas the
// per-tipo price applies when set; everything else falls back to Precio.
func (c *Cancha) PrecioPara(tipo *CanchaTipo) int64 {
	if c.Tipo != TipoMixta || tipo == nil {
		return c.Precio
	}
	switch *tipo {
	case TipoF5:
		if c.PrecioF5 != nil {
			return *c.PrecioF5
		}
	case TipoF10:
		if c.PrecioF10 != nil {
			return *c.PrecioF10
		}
	}
	return c.Precio
}
