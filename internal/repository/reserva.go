package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/SantiFenochio/FutbolVB/internal/domain"
)

const reservaColumns = `id, cancha_id, tipo_seleccionado, fecha::text, horario,
	jugador_nombre, jugador_telefono, jugador_email, precio, sena, sena_pagada,
	comentarios, estado, serie_id, mercadopago_id, created_at, updated_at`

type ReservaRepository struct {
	db           *dbpg.DB
	strategy     retry.Strategy
	queryTimeout time.Duration
}

func NewReservaRepo(db *dbpg.DB, queryTimeout time.Duration) *ReservaRepository {
	return &ReservaRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		queryTimeout: queryTimeout,
	}
}

// Create claims the slot and inserts the reserva in one statement. The
// partial unique index on (cancha_id, tipo_seleccionado, fecha, horario) over
// non-cancelled rows is what makes the claim atomic: of two concurrent
// inserts for the same slot exactly one succeeds, the other gets
// ErrHorarioOcupado. Retrying the insert would double-claim on ambiguous
// failures, so this write path runs without the retry strategy.
func (r *ReservaRepository) Create(ctx context.Context, res *domain.Reserva) error {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `INSERT INTO reservas (id, cancha_id, tipo_seleccionado, fecha, horario,
	              jugador_nombre, jugador_telefono, jugador_email, precio, sena,
	              sena_pagada, comentarios, estado, serie_id, mercadopago_id,
	              created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := r.db.Master.ExecContext(
		ctx, query,
		res.ID, res.CanchaID, tipoValue(res.Tipo), res.Fecha, res.Horario,
		res.JugadorNombre, res.JugadorTelefono, res.JugadorEmail,
		res.Precio, res.Sena, res.SenaPagada, res.Comentarios,
		res.Estado, res.SerieID, res.MercadoPagoID,
		res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrHorarioOcupado
		}
		return fmt.Errorf("insert reserva: %w", err)
	}

	return nil
}

func (r *ReservaRepository) GetByID(ctx context.Context, id string) (*domain.Reserva, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `SELECT ` + reservaColumns + ` FROM reservas WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reserva: %w", err)
	}

	res, err := scanReserva(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservaNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *ReservaRepository) ListBySerie(ctx context.Context, serieID string) ([]*domain.Reserva, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `SELECT ` + reservaColumns + ` FROM reservas
	          WHERE serie_id = $1
	          ORDER BY fecha`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, serieID)
	if err != nil {
		return nil, fmt.Errorf("list serie: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reserva
	for rows.Next() {
		rv, err := scanReserva(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, rv)
	}

	return res, rows.Err()
}

// HorariosOcupados returns the slot labels held by non-cancelled reservas for
// the exact (cancha, tipo, fecha) tuple. MIXTA occupancy is per tipo: the
// same label may be taken as F5 and as F10 on the same fecha.
func (r *ReservaRepository) HorariosOcupados(ctx context.Context, canchaID int64, tipo *domain.CanchaTipo, fecha string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `SELECT horario FROM reservas
	          WHERE cancha_id = $1
	            AND fecha = $2
	            AND estado = ANY($3)
	            AND ($4::text IS NULL OR tipo_seleccionado = $4)
	          ORDER BY horario`

	estados := make([]string, 0, len(domain.ActiveEstados))
	for _, e := range domain.ActiveEstados {
		estados = append(estados, string(e))
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, canchaID, fecha, pq.Array(estados), tipoValue(tipo))
	if err != nil {
		return nil, fmt.Errorf("horarios ocupados: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var h string
		if err = rows.Scan(&h); err != nil {
			return nil, fmt.Errorf("scan horario: %w", err)
		}
		res = append(res, h)
	}

	return res, rows.Err()
}

// Confirmar is the single place the pendiente->confirmada transition happens.
// The estado guard in the WHERE clause makes it idempotent under duplicate
// webhook delivery: the second delivery matches zero rows.
func (r *ReservaRepository) Confirmar(ctx context.Context, id, mercadopagoID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `UPDATE reservas
	          SET estado = $2,
	              sena_pagada = TRUE,
	              mercadopago_id = CASE WHEN $3 = '' THEN mercadopago_id ELSE $3 END,
	              updated_at = now()
	          WHERE id = $1 AND estado = $4`

	res, err := r.db.Master.ExecContext(ctx, query, id, domain.EstadoConfirmada, mercadopagoID, domain.EstadoPendiente)
	if err != nil {
		return false, fmt.Errorf("confirmar reserva: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("confirmar rows affected: %w", err)
	}
	if rows == 0 {
		return false, r.checkExists(ctx, id)
	}

	return true, nil
}

func (r *ReservaRepository) Cancelar(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `UPDATE reservas
	          SET estado = $2, updated_at = now()
	          WHERE id = $1 AND estado = $3`

	res, err := r.db.Master.ExecContext(ctx, query, id, domain.EstadoCancelada, domain.EstadoPendiente)
	if err != nil {
		return false, fmt.Errorf("cancelar reserva: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("cancelar rows affected: %w", err)
	}
	if rows == 0 {
		return false, r.checkExists(ctx, id)
	}

	return true, nil
}

// CancelarVencidas releases slots held by pendientes that outlived the
// payment window. Cancelled rows fall out of the partial unique index, so the
// slot becomes claimable again.
func (r *ReservaRepository) CancelarVencidas(ctx context.Context, ventana time.Duration) ([]*domain.Reserva, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `UPDATE reservas
	          SET estado = $2, updated_at = now()
	          WHERE estado = $1
	            AND created_at + make_interval(secs => $3) < now()
	          RETURNING ` + reservaColumns

	rows, err := r.db.Master.QueryContext(ctx, query, domain.EstadoPendiente, domain.EstadoCancelada, ventana.Seconds())
	if err != nil {
		return nil, fmt.Errorf("cancelar vencidas: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reserva
	for rows.Next() {
		rv, err := scanReserva(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, rv)
	}

	return res, rows.Err()
}

func (r *ReservaRepository) ListResumen(ctx context.Context) ([]*domain.ReservaResumen, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `SELECT r.estado, r.precio, r.sena, r.sena_pagada, r.fecha::text,
	                 c.nombre, r.tipo_seleccionado
	          FROM reservas r
	          JOIN canchas c ON c.id = r.cancha_id
	          ORDER BY r.created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list resumen: %w", err)
	}
	defer rows.Close()

	var res []*domain.ReservaResumen
	for rows.Next() {
		var rr domain.ReservaResumen
		var tipo sql.NullString
		if err = rows.Scan(&rr.Estado, &rr.Precio, &rr.Sena, &rr.SenaPagada, &rr.Fecha, &rr.CanchaNombre, &tipo); err != nil {
			return nil, fmt.Errorf("scan resumen: %w", err)
		}
		if tipo.Valid {
			t := domain.CanchaTipo(tipo.String)
			rr.Tipo = &t
		}
		res = append(res, &rr)
	}

	return res, rows.Err()
}

func (r *ReservaRepository) checkExists(ctx context.Context, id string) error {
	var exists bool
	if err := r.db.Master.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM reservas WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check reserva: %w", err)
	}
	if !exists {
		return domain.ErrReservaNotFound
	}
	return nil
}

func tipoValue(t *domain.CanchaTipo) any {
	if t == nil {
		return nil
	}
	return string(*t)
}

func scanReserva(row rowScanner) (*domain.Reserva, error) {
	var res domain.Reserva
	var tipo, serie sql.NullString
	if err := row.Scan(
		&res.ID, &res.CanchaID, &tipo, &res.Fecha, &res.Horario,
		&res.JugadorNombre, &res.JugadorTelefono, &res.JugadorEmail,
		&res.Precio, &res.Sena, &res.SenaPagada, &res.Comentarios,
		&res.Estado, &serie, &res.MercadoPagoID, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan reserva: %w", err)
	}
	if tipo.Valid {
		t := domain.CanchaTipo(tipo.String)
		res.Tipo = &t
	}
	if serie.Valid {
		res.SerieID = &serie.String
	}
	return &res, nil
}
