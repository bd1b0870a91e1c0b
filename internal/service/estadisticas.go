package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/SantiFenochio/FutbolVB/internal/domain"
	"github.com/SantiFenochio/FutbolVB/internal/service/ports"
)

// slotsPorDiaReferencia is the denominator of the average-occupancy figure:
// the admin dashboard treats four reservas per active day as a full day.
const slotsPorDiaReferencia = 4

type EstadisticasService struct {
	reservaRepo ports.ReservaRepo
}

func NewEstadisticasService(reservaRepo ports.ReservaRepo) *EstadisticasService {
	return &EstadisticasService{reservaRepo: reservaRepo}
}

// Estadisticas aggregates over all reservas. Only confirmadas count toward
// totals and rankings; deposits only when actually paid. Pure read side.
func (s *EstadisticasService) Estadisticas(ctx context.Context) (*domain.Estadisticas, error) {
	rows, err := s.reservaRepo.ListResumen(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reservas: %w", err)
	}

	stats := &domain.Estadisticas{
		CanchasMasPopulares: []domain.CanchaPopularidad{},
		ReservasPorDia:      []domain.ReservasDia{},
	}

	popularidad := map[string]int{}
	var popularidadOrden []string
	porDia := map[string]int{}

	for _, r := range rows {
		if r.Estado != domain.EstadoConfirmada {
			continue
		}

		stats.TotalReservas++
		stats.IngresosTotales += r.Precio
		if r.SenaPagada {
			stats.SenasRecaudadas += r.Sena
		}

		nombre := r.CanchaNombre
		if r.Tipo != nil {
			nombre = fmt.Sprintf("%s %s", r.CanchaNombre, *r.Tipo)
		}
		if _, seen := popularidad[nombre]; !seen {
			popularidadOrden = append(popularidadOrden, nombre)
		}
		popularidad[nombre]++

		porDia[r.Fecha]++
	}

	for _, nombre := range popularidadOrden {
		stats.CanchasMasPopulares = append(stats.CanchasMasPopulares, domain.CanchaPopularidad{
			Nombre:   nombre,
			Reservas: popularidad[nombre],
		})
	}
	// Stable sort keeps first-seen order on ties.
	sort.SliceStable(stats.CanchasMasPopulares, func(i, j int) bool {
		return stats.CanchasMasPopulares[i].Reservas > stats.CanchasMasPopulares[j].Reservas
	})

	for fecha, cantidad := range porDia {
		stats.ReservasPorDia = append(stats.ReservasPorDia, domain.ReservasDia{
			Fecha:    fecha,
			Cantidad: cantidad,
		})
	}
	sort.Slice(stats.ReservasPorDia, func(i, j int) bool {
		return stats.ReservasPorDia[i].Fecha < stats.ReservasPorDia[j].Fecha
	})

	if stats.TotalReservas > 0 {
		dias := len(stats.ReservasPorDia)
		stats.OcupacionPromedio = int(math.Round(
			float64(stats.TotalReservas) / float64(dias*slotsPorDiaReferencia) * 100,
		))
	}

	return stats, nil
}
