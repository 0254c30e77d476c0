package masterdata_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/inventory-entries/internal/domain"
	"github.com/jhoicas/inventory-entries/internal/infrastructure/masterdata"
	"github.com/jhoicas/inventory-entries/internal/infrastructure/memory"
)

func TestReadSuppliers_Semicolon(t *testing.T) {
	in := "NIT;Nombre;Activo\n900.123.456-8;Ferretería Central;si\n\n860512345-6;Distribuidora Sur;no\n"
	rows, err := masterdata.ReadSuppliers(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "9001234568", rows[0].NIT)
	assert.Equal(t, "Ferretería Central", rows[0].Name)
	assert.True(t, rows[0].Active)
	assert.False(t, rows[1].Active)
	assert.Equal(t, 4, rows[1].Line)
}

func TestReadSuppliers_InvalidVerificationDigit(t *testing.T) {
	_, err := masterdata.ReadSuppliers(strings.NewReader("nit,nombre\n900123456-5,Mal NIT\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "línea 2")
}

func TestReadSuppliers_MissingColumn(t *testing.T) {
	_, err := masterdata.ReadSuppliers(strings.NewReader("nombre\nSolo nombre\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nit")
}

func TestReadLocations_Latin1(t *testing.T) {
	encoded, err := charmap.ISO8859_1.NewEncoder().String("nombre;planta\nBodega Médica;\nPlanta Niño;sí\n")
	require.NoError(t, err)

	r, err := masterdata.DecodeReader(bytes.NewReader([]byte(encoded)), "ISO-8859-1")
	require.NoError(t, err)
	rows, err := masterdata.ReadLocations(r)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Bodega Médica", rows[0].Name)
	assert.False(t, rows[0].IsProductionSite)
	assert.Equal(t, "Planta Niño", rows[1].Name)
	assert.True(t, rows[1].IsProductionSite)
}

func TestDecodeReader_Unsupported(t *testing.T) {
	_, err := masterdata.DecodeReader(strings.NewReader(""), "ebcdic")
	assert.Error(t, err)
}

func TestImporter_SkipsDuplicateSuppliers(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	im := masterdata.NewImporter(memory.NewSupplierRepository(store), memory.NewLocationRepository(store), nil)
	rows := []masterdata.SupplierRow{
		{Line: 2, NIT: "9001234568", Name: "Ferretería Central", Active: true},
		{Line: 3, NIT: "9001234568", Name: "Repetido", Active: true},
	}

	res, err := im.ImportSuppliers(ctx, "empresa-1", rows)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 1, res.Skipped)

	s, err := memory.NewSupplierRepository(store).GetByCompanyAndNIT(ctx, "empresa-1", "9001234568")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "Ferretería Central", s.Name)
}

func TestImporter_Locations(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	im := masterdata.NewImporter(memory.NewSupplierRepository(store), memory.NewLocationRepository(store), nil)

	res, err := im.ImportLocations(ctx, "empresa-1", []masterdata.LocationRow{{Line: 2, Name: "Bodega"}})
	require.NoError(t, err)
	require.Len(t, res.IDs, 1)

	loc, err := memory.NewLocationRepository(store).GetByID(ctx, res.IDs[0])
	require.NoError(t, err)
	assert.Equal(t, "empresa-1", loc.CompanyID)

	_, err = im.ImportLocations(ctx, "", nil)
	assert.Error(t, err)
}

func TestImporter_ImportFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	suppliersPath := filepath.Join(dir, "proveedores.csv")
	locationsPath := filepath.Join(dir, "ubicaciones.csv")
	latin1, err := charmap.ISO8859_1.NewEncoder().String("nombre;planta\nBodega Medellín;no\n")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(suppliersPath, []byte("nit;nombre\n900.123.456-8;Ferreteria Central\n"), 0o600))
	require.NoError(t, os.WriteFile(locationsPath, []byte(latin1), 0o600))

	store := memory.NewStore()
	im := masterdata.NewImporter(memory.NewSupplierRepository(store), memory.NewLocationRepository(store), nil)
	sup, loc, err := im.ImportFiles(ctx, "empresa-1", suppliersPath, locationsPath, "ISO-8859-1")
	require.NoError(t, err)
	assert.Equal(t, 1, sup.Created)
	require.Len(t, loc.IDs, 1)

	l, err := memory.NewLocationRepository(store).GetByID(ctx, loc.IDs[0])
	require.NoError(t, err)
	assert.Equal(t, "Bodega Medellín", l.Name)
}

func TestImporter_ImportFiles_Errors(t *testing.T) {
	store := memory.NewStore()
	im := masterdata.NewImporter(memory.NewSupplierRepository(store), memory.NewLocationRepository(store), nil)

	_, _, err := im.ImportFiles(context.Background(), "empresa-1", filepath.Join(t.TempDir(), "no-existe.csv"), "", "UTF-8")
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "ubicaciones.csv")
	require.NoError(t, os.WriteFile(path, []byte("nombre\nBodega\n"), 0o600))
	_, _, err = im.ImportFiles(context.Background(), "", "", path, "UTF-8")
	assert.ErrorIs(t, err, domain.ErrTenantMissing)
}
