package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/SantiFenochio/FutbolVB/internal/domain"
	"github.com/SantiFenochio/FutbolVB/internal/service/ports"
)

const (
	minSemanas = 2
	maxSemanas = 8
)

type ReservaService struct {
	reservaRepo   ports.ReservaRepo
	canchaRepo    ports.CanchaRepo
	gateway       ports.PaymentGateway
	logger        logger.Logger
	horizonteDias int
	ventanaPago   time.Duration
}

func NewReservaService(
	reservaRepo ports.ReservaRepo,
	canchaRepo ports.CanchaRepo,
	gateway ports.PaymentGateway,
	logger logger.Logger,
	horizonteDias int,
	ventanaPago time.Duration,
) *ReservaService {
	return &ReservaService{
		reservaRepo:   reservaRepo,
		canchaRepo:    canchaRepo,
		gateway:       gateway,
		logger:        logger,
		horizonteDias: horizonteDias,
		ventanaPago:   ventanaPago,
	}
}

// Create validates the request and claims the slot (or the weekly slots).
// Each week is claimed independently; a taken week is reported in
// FechasFallidas without rolling back the weeks already created.
func (s *ReservaService) Create(ctx context.Context, input domain.CreateReservaInput) (*domain.ReservaSerie, error) {
	cancha, err := s.canchaRepo.GetByID(ctx, input.CanchaID)
	if err != nil {
		return nil, fmt.Errorf("check cancha: %w", err)
	}

	fechaBase, err := s.validate(&input, cancha)
	if err != nil {
		return nil, err
	}

	precio := cancha.PrecioPara(input.Tipo)
	sena := domain.CalcularSena(precio)

	semanas := input.Semanas
	if semanas < minSemanas {
		semanas = 1
	}

	serie := &domain.ReservaSerie{}
	var serieID *string
	if semanas > 1 {
		id := uuid.New().String()
		serieID = &id
		serie.SerieID = id
	}

	for k := 0; k < semanas; k++ {
		fecha := fechaBase.AddDate(0, 0, 7*k).Format(domain.FechaLayout)
		now := time.Now().UTC()

		comentarios := input.Comentarios
		if serieID != nil {
			marca := fmt.Sprintf("[serie %s semana %d/%d]", *serieID, k+1, semanas)
			comentarios = strings.TrimSpace(comentarios + " " + marca)
		}

		reserva := &domain.Reserva{
			ID:              uuid.New().String(),
			CanchaID:        cancha.ID,
			Tipo:            input.Tipo,
			Fecha:           fecha,
			Horario:         input.Horario,
			JugadorNombre:   input.JugadorNombre,
			JugadorTelefono: input.JugadorTelefono,
			JugadorEmail:    input.JugadorEmail,
			Precio:          precio,
			Sena:            sena,
			Comentarios:     comentarios,
			Estado:          domain.EstadoPendiente,
			SerieID:         serieID,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		if err = s.reservaRepo.Create(ctx, reserva); err != nil {
			if semanas == 1 {
				return nil, fmt.Errorf("create reserva: %w", err)
			}
			if !errors.Is(err, domain.ErrHorarioOcupado) {
				return nil, fmt.Errorf("create reserva semana %d: %w", k+1, err)
			}
			serie.FechasFallidas = append(serie.FechasFallidas, fecha)
			continue
		}

		serie.Reservas = append(serie.Reservas, reserva)
	}

	if len(serie.Reservas) == 0 {
		return nil, domain.ErrHorarioOcupado
	}

	s.logger.Info("reserva created",
		logger.String("reserva_id", serie.Reservas[0].ID),
		logger.Int64("cancha_id", cancha.ID),
		logger.String("fecha", serie.Reservas[0].Fecha),
		logger.String("horario", input.Horario),
		logger.Int("semanas", len(serie.Reservas)),
		logger.Int("fallidas", len(serie.FechasFallidas)),
	)

	return serie, nil
}

func (s *ReservaService) GetByID(ctx context.Context, id string) (*domain.Reserva, error) {
	return s.reservaRepo.GetByID(ctx, id)
}

// CreatePago builds the deposit payment preference for a pendiente reserva
// and returns the provider redirect URL. For a weekly serie the head reserva
// pays the deposit of every week in one charge.
func (s *ReservaService) CreatePago(ctx context.Context, reservaID string) (*domain.Preferencia, error) {
	reserva, err := s.reservaRepo.GetByID(ctx, reservaID)
	if err != nil {
		return nil, fmt.Errorf("get reserva: %w", err)
	}

	if reserva.Estado != domain.EstadoPendiente {
		return nil, domain.ErrReservaNoPendiente
	}

	cancha, err := s.canchaRepo.GetByID(ctx, reserva.CanchaID)
	if err != nil {
		return nil, fmt.Errorf("get cancha: %w", err)
	}

	nombre := cancha.Nombre
	if reserva.Tipo != nil {
		nombre = fmt.Sprintf("%s %s", cancha.Nombre, *reserva.Tipo)
	}

	monto := reserva.Sena
	titulo := fmt.Sprintf("%s - %s %s", nombre, reserva.Fecha, reserva.Horario)
	descripcion := fmt.Sprintf("Seña de reserva cancha %s para el %s a las %s", nombre, reserva.Fecha, reserva.Horario)

	if reserva.SerieID != nil {
		rows, err := s.reservaRepo.ListBySerie(ctx, *reserva.SerieID)
		if err != nil {
			return nil, fmt.Errorf("list serie: %w", err)
		}
		monto = reserva.Sena * int64(len(rows))
		titulo = fmt.Sprintf("%s - %d turnos semanales", nombre, len(rows))
		descripcion = fmt.Sprintf("Seña de reserva semanal por %d semanas - %s %s", len(rows), reserva.Fecha, reserva.Horario)
	}

	pref, err := s.gateway.CreatePreference(ctx, domain.PreferenciaInput{
		ReservaID:   reserva.ID,
		Titulo:      titulo,
		Descripcion: descripcion,
		Monto:       monto,
		PayerEmail:  reserva.JugadorEmail,
	})
	if err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}

	s.logger.Info("payment preference created",
		logger.String("reserva_id", reserva.ID),
		logger.String("preference_id", pref.ID),
		logger.Int64("monto", monto),
	)

	return pref, nil
}

// CancelarVencidas releases pendientes that outlived the payment window.
// Called periodically by the scheduler.
func (s *ReservaService) CancelarVencidas(ctx context.Context) ([]*domain.Reserva, error) {
	cancelled, err := s.reservaRepo.CancelarVencidas(ctx, s.ventanaPago)
	if err != nil {
		return nil, fmt.Errorf("cancelar vencidas: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("pendientes vencidas cancelled",
			logger.Int("count", len(cancelled)),
		)
	}

	return cancelled, nil
}

func (s *ReservaService) validate(input *domain.CreateReservaInput, cancha *domain.Cancha) (time.Time, error) {
	if !cancha.TieneHorario(input.Horario) {
		return time.Time{}, fmt.Errorf("%w: horario %q is not in the cancha schedule", domain.ErrValidation, input.Horario)
	}

	switch {
	case cancha.Tipo == domain.TipoMixta && input.Tipo == nil:
		return time.Time{}, fmt.Errorf("%w: tipo is required for canchas mixtas", domain.ErrValidation)
	case cancha.Tipo == domain.TipoMixta && *input.Tipo != domain.TipoF5 && *input.Tipo != domain.TipoF10:
		return time.Time{}, fmt.Errorf("%w: tipo must be F5 or F10", domain.ErrValidation)
	case cancha.Tipo != domain.TipoMixta && input.Tipo != nil:
		return time.Time{}, fmt.Errorf("%w: tipo only applies to canchas mixtas", domain.ErrValidation)
	}

	if input.JugadorNombre == "" || input.JugadorTelefono == "" || input.JugadorEmail == "" {
		return time.Time{}, fmt.Errorf("%w: jugador nombre, telefono and email are required", domain.ErrValidation)
	}

	if input.Semanas != 0 && input.Semanas != 1 && (input.Semanas < minSemanas || input.Semanas > maxSemanas) {
		return time.Time{}, fmt.Errorf("%w: semanas must be between %d and %d", domain.ErrValidation, minSemanas, maxSemanas)
	}

	fecha, err := time.Parse(domain.FechaLayout, input.Fecha)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid fecha, expected YYYY-MM-DD", domain.ErrValidation)
	}

	hoy, _ := time.Parse(domain.FechaLayout, time.Now().Format(domain.FechaLayout))
	if fecha.Before(hoy) {
		return time.Time{}, fmt.Errorf("%w: fecha must not be in the past", domain.ErrValidation)
	}
	if fecha.After(hoy.AddDate(0, 0, s.horizonteDias)) {
		return time.Time{}, fmt.Errorf("%w: fecha is beyond the %d day booking horizon", domain.ErrValidation, s.horizonteDias)
	}

	return fecha, nil
}
