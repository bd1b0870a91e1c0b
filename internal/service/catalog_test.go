package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SantiFenochio/FutbolVB/internal/domain"
	"github.com/SantiFenochio/FutbolVB/internal/service/ports/mocks"
)

func newCatalogService(t *testing.T) (*CatalogService, *mocks.MockCanchaRepo, *mocks.MockReservaRepo) {
	t.Helper()
	canchaRepo := mocks.NewMockCanchaRepo(t)
	reservaRepo := mocks.NewMockReservaRepo(t)
	svc := NewCatalogService(canchaRepo, reservaRepo, newTestLogger(t))
	return svc, canchaRepo, reservaRepo
}

func TestCatalogService_List(t *testing.T) {
	svc, canchaRepo, _ := newCatalogService(t)

	canchas := []*domain.Cancha{testCanchaMixta(), testCanchaF5()}
	canchaRepo.EXPECT().List(mock.Anything).Return(canchas, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCatalogService_GetByID_NotFound(t *testing.T) {
	svc, canchaRepo, _ := newCatalogService(t)

	canchaRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrCanchaNotFound)

	_, err := svc.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrCanchaNotFound)
}

func TestCatalogService_HorariosOcupados(t *testing.T) {
	svc, canchaRepo, reservaRepo := newCatalogService(t)

	canchaRepo.EXPECT().GetByID(mock.Anything, int64(4)).Return(testCanchaF5(), nil)
	reservaRepo.EXPECT().HorariosOcupados(mock.Anything, int64(4), (*domain.CanchaTipo)(nil), "2026-09-05").
		Return([]string{"19:00", "20:00"}, nil)

	ocupados, err := svc.HorariosOcupados(context.Background(), 4, nil, "2026-09-05")

	require.NoError(t, err)
	assert.Equal(t, []string{"19:00", "20:00"}, ocupados)
}

func TestCatalogService_HorariosOcupados_MixtaPerTipo(t *testing.T) {
	svc, canchaRepo, reservaRepo := newCatalogService(t)

	tipo := domain.TipoF5
	canchaRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(testCanchaMixta(), nil)
	reservaRepo.EXPECT().HorariosOcupados(mock.Anything, int64(1), &tipo, "2026-09-05").
		Return([]string{"18:00"}, nil)

	ocupados, err := svc.HorariosOcupados(context.Background(), 1, &tipo, "2026-09-05")

	require.NoError(t, err)
	assert.Equal(t, []string{"18:00"}, ocupados)
}

func TestCatalogService_HorariosOcupados_TipoOnNonMixta(t *testing.T) {
	svc, canchaRepo, _ := newCatalogService(t)

	tipo := domain.TipoF5
	canchaRepo.EXPECT().GetByID(mock.Anything, int64(4)).Return(testCanchaF5(), nil)

	_, err := svc.HorariosOcupados(context.Background(), 4, &tipo, "2026-09-05")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_HorariosOcupados_CanchaNotFound(t *testing.T) {
	svc, canchaRepo, _ := newCatalogService(t)

	canchaRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrCanchaNotFound)

	_, err := svc.HorariosOcupados(context.Background(), 99, nil, "2026-09-05")

	assert.ErrorIs(t, err, domain.ErrCanchaNotFound)
}

func TestCatalogService_HorariosOcupados_FailsOpenOnStoreError(t *testing.T) {
	svc, canchaRepo, reservaRepo := newCatalogService(t)

	canchaRepo.EXPECT().GetByID(mock.Anything, int64(4)).Return(testCanchaF5(), nil)
	reservaRepo.EXPECT().HorariosOcupados(mock.Anything, int64(4), (*domain.CanchaTipo)(nil), "2026-09-05").
		Return(nil, errors.New("connection refused"))

	ocupados, err := svc.HorariosOcupados(context.Background(), 4, nil, "2026-09-05")

	require.NoError(t, err)
	assert.Empty(t, ocupados)
	assert.NotNil(t, ocupados)
}

func TestCatalogService_HorariosOcupados_FailsOpenOnCanchaLookupError(t *testing.T) {
	svc, canchaRepo, _ := newCatalogService(t)

	canchaRepo.EXPECT().GetByID(mock.Anything, int64(4)).Return(nil, errors.New("connection refused"))

	ocupados, err := svc.HorariosOcupados(context.Background(), 4, nil, "2026-09-05")

	require.NoError(t, err)
	assert.Empty(t, ocupados)
	assert.NotNil(t, ocupados)
}
