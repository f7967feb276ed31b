package usecase_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrotrace/trazabilidad-api/internal/application/dto"
	"github.com/agrotrace/trazabilidad-api/internal/application/usecase"
	"github.com/agrotrace/trazabilidad-api/internal/domain"
)

func createLoteRequest() dto.CreateLoteRequest {
	return dto.CreateLoteRequest{
		CodigoLote:   "MG-2026-001",
		Producto:     "mango",
		Finca:        "La Esperanza",
		Ubicacion:    "Valle",
		FechaCosecha: "2026-01-10",
		Responsable:  "Ana",
		CantidadKg:   decimal.NewFromInt(500),
	}
}

func TestLoteCreate_Exito(t *testing.T) {
	repo := &memLotes{}
	uc := usecase.NewLoteUseCase(repo)

	out, err := uc.Create(createLoteRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	_, err = uuid.Parse(out.ID)
	assert.NoError(t, err, "el ID generado debe ser un UUID")
	assert.Equal(t, "MG-2026-001", out.CodigoLote)
	assert.Equal(t, "2026-01-10", out.FechaCosecha)
	assert.True(t, out.CantidadKg.Equal(decimal.NewFromInt(500)))
	assert.Len(t, repo.items, 1, "exactamente una escritura en el almacén")
}

func TestLoteCreate_ValidacionSinEscritura(t *testing.T) {
	repo := &memLotes{}
	uc := usecase.NewLoteUseCase(repo)

	in := createLoteRequest()
	in.CodigoLote = "lote-1"
	in.Producto = ""
	_, err := uc.Create(in)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Violaciones, 2, "se reportan todas las violaciones juntas")
	assert.Empty(t, repo.items, "cero escrituras si la validación falla")
}

func TestLoteCreate_CodigoDuplicado(t *testing.T) {
	repo := &memLotes{}
	uc := usecase.NewLoteUseCase(repo)

	_, err := uc.Create(createLoteRequest())
	require.NoError(t, err)

	in := createLoteRequest()
	in.Producto = "mango tommy" // mismo código, otros campos distintos
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, repo.items, 1)
}

func TestLoteCreate_FallaDelAlmacenNoEsNotFound(t *testing.T) {
	fallo := errors.New("conexión rechazada")
	uc := usecase.NewLoteUseCase(&memLotes{err: fallo})

	_, err := uc.Create(createLoteRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, fallo)
	assert.NotErrorIs(t, err, domain.ErrLoteNotFound)
}

func TestLoteGetByID_RoundTrip(t *testing.T) {
	repo := &memLotes{}
	uc := usecase.NewLoteUseCase(repo)

	creado, err := uc.Create(createLoteRequest())
	require.NoError(t, err)

	leido, err := uc.GetByID(creado.ID)
	require.NoError(t, err)
	assert.Equal(t, creado, leido)
}

func TestLoteGetByID_NoEncontrado(t *testing.T) {
	uc := usecase.NewLoteUseCase(&memLotes{})
	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrLoteNotFound)
}

func TestLoteGetByCodigo(t *testing.T) {
	repo := &memLotes{}
	uc := usecase.NewLoteUseCase(repo)

	creado, err := uc.Create(createLoteRequest())
	require.NoError(t, err)

	leido, err := uc.GetByCodigo("MG-2026-001")
	require.NoError(t, err)
	assert.Equal(t, creado.ID, leido.ID)

	_, err = uc.GetByCodigo("ZZ-2026-999")
	assert.ErrorIs(t, err, domain.ErrLoteNotFound)
}

func TestLoteList_OrdenFechaCosechaDescendente(t *testing.T) {
	repo := &memLotes{}
	uc := usecase.NewLoteUseCase(repo)

	viejo := createLoteRequest()
	viejo.CodigoLote = "MG-2026-001"
	viejo.FechaCosecha = "2026-01-10"
	nuevo := createLoteRequest()
	nuevo.CodigoLote = "MG-2026-002"
	nuevo.FechaCosecha = "2026-02-20"

	_, err := uc.Create(viejo)
	require.NoError(t, err)
	_, err = uc.Create(nuevo)
	require.NoError(t, err)

	out, err := uc.List()
	require.NoError(t, err)
	require.Equal(t, 2, out.Total)
	assert.Equal(t, "MG-2026-002", out.Items[0].CodigoLote)
	assert.Equal(t, "MG-2026-001", out.Items[1].CodigoLote)
}
