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

type CanchaRepository struct {
	db           *dbpg.DB
	strategy     retry.Strategy
	queryTimeout time.Duration
}

func NewCanchaRepo(db *dbpg.DB, queryTimeout time.Duration) *CanchaRepository {
	return &CanchaRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		queryTimeout: queryTimeout,
	}
}

func (r *CanchaRepository) List(ctx context.Context) ([]*domain.Cancha, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `SELECT id, nombre, tipo, precio, precio_f5, precio_f10, descripcion,
	                 capacidad, caracteristicas, horarios, imagen_url, activa, created_at
	          FROM canchas
	          WHERE activa = TRUE
	          ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list canchas: %w", err)
	}
	defer rows.Close()

	var res []*domain.Cancha
	for rows.Next() {
		c, err := scanCancha(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func (r *CanchaRepository) GetByID(ctx context.Context, id int64) (*domain.Cancha, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `SELECT id, nombre, tipo, precio, precio_f5, precio_f10, descripcion,
	                 capacidad, caracteristicas, horarios, imagen_url, activa, created_at
	          FROM canchas
	          WHERE id = $1 AND activa = TRUE`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get cancha: %w", err)
	}

	c, err := scanCancha(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCanchaNotFound
		}
		return nil, err
	}

	return c, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCancha(row rowScanner) (*domain.Cancha, error) {
	var c domain.Cancha
	if err := row.Scan(
		&c.ID, &c.Nombre, &c.Tipo, &c.Precio, &c.PrecioF5, &c.PrecioF10,
		&c.Descripcion, &c.Capacidad, pq.Array(&c.Caracteristicas),
		pq.Array(&c.Horarios), &c.ImagenURL, &c.Activa, &c.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan cancha: %w", err)
	}
	return &c, nil
}
