package masterdata

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ReadSuppliersFile abre path, lo decodifica con charset y lee los proveedores.
func ReadSuppliersFile(path, charset string) ([]SupplierRow, error) {
	var rows []SupplierRow
	err := readFile(path, charset, func(r io.Reader) (err error) {
		rows, err = ReadSuppliers(r)
		return err
	})
	return rows, err
}

// ReadLocationsFile abre path, lo decodifica con charset y lee las ubicaciones.
func ReadLocationsFile(path, charset string) ([]LocationRow, error) {
	var rows []LocationRow
	err := readFile(path, charset, func(r io.Reader) (err error) {
		rows, err = ReadLocations(r)
		return err
	})
	return rows, err
}

func readFile(path, charset string, fn func(r io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	r, err := DecodeReader(f, charset)
	if err != nil {
		return err
	}
	return fn(r)
}

// ImportFiles lee e importa los CSV indicados; una ruta vacía se salta.
func (im *Importer) ImportFiles(ctx context.Context, companyID, suppliersPath, locationsPath, charset string) (suppliers, locations Result, err error) {
	if suppliersPath != "" {
		rows, err := ReadSuppliersFile(suppliersPath, charset)
		if err != nil {
			return suppliers, locations, fmt.Errorf("%s: %w", suppliersPath, err)
		}
		if suppliers, err = im.ImportSuppliers(ctx, companyID, rows); err != nil {
			return suppliers, locations, fmt.Errorf("%s: %w", suppliersPath, err)
		}
	}
	if locationsPath != "" {
		rows, err := ReadLocationsFile(locationsPath, charset)
		if err != nil {
			return suppliers, locations, fmt.Errorf("%s: %w", locationsPath, err)
		}
		if locations, err = im.ImportLocations(ctx, companyID, rows); err != nil {
			return suppliers, locations, fmt.Errorf("%s: %w", locationsPath, err)
		}
	}
	return suppliers, locations, nil
}
