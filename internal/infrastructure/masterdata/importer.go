package masterdata

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventory-entries/internal/domain"
	"github.com/jhoicas/inventory-entries/internal/domain/entity"
	"github.com/jhoicas/inventory-entries/internal/domain/repository"
	"github.com/jhoicas/inventory-entries/pkg/logger"
)

// Result resumen de una importación.
type Result struct {
	Created int
	Skipped int
	IDs     []string // ids creados, en el orden del archivo
}

// Importer persiste filas de maestros para una empresa.
type Importer struct {
	suppliers repository.SupplierRepository
	locations repository.LocationRepository
	log       *logger.Logger
}

// NewImporter construye el importador.
func NewImporter(suppliers repository.SupplierRepository, locations repository.LocationRepository, log *logger.Logger) *Importer {
	if log == nil {
		log = logger.Nop()
	}
	return &Importer{suppliers: suppliers, locations: locations, log: log.Named("masterdata")}
}

// ImportSuppliers crea los proveedores; un NIT ya registrado en la empresa se omite.
func (im *Importer) ImportSuppliers(ctx context.Context, companyID string, rows []SupplierRow) (Result, error) {
	if companyID == "" {
		return Result{}, domain.ErrTenantMissing
	}
	var res Result
	now := time.Now()
	for _, row := range rows {
		s := &entity.Supplier{
			ID:        uuid.New().String(),
			CompanyID: companyID,
			NIT:       row.NIT,
			Name:      row.Name,
			Active:    row.Active,
			CreatedAt: now,
			UpdatedAt: now,
		}
		err := im.suppliers.Create(ctx, s)
		if errors.Is(err, domain.ErrDuplicate) {
			im.log.Warn().Int("line", row.Line).Str("nit", row.NIT).Msg("proveedor ya registrado; se omite")
			res.Skipped++
			continue
		}
		if err != nil {
			return res, fmt.Errorf("línea %d: %w", row.Line, err)
		}
		res.Created++
		res.IDs = append(res.IDs, s.ID)
	}
	return res, nil
}

// ImportLocations crea una ubicación por fila.
func (im *Importer) ImportLocations(ctx context.Context, companyID string, rows []LocationRow) (Result, error) {
	if companyID == "" {
		return Result{}, domain.ErrTenantMissing
	}
	var res Result
	now := time.Now()
	for _, row := range rows {
		l := &entity.Location{
			ID:               uuid.New().String(),
			CompanyID:        companyID,
			Name:             row.Name,
			IsProductionSite: row.IsProductionSite,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := im.locations.Create(ctx, l); err != nil {
			return res, fmt.Errorf("línea %d: %w", row.Line, err)
		}
		im.log.Info().Str("location_id", l.ID).Str("name", l.Name).Msg("ubicación creada")
		res.Created++
		res.IDs = append(res.IDs, l.ID)
	}
	return res, nil
}
