package inventory

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/inventory-entries/internal/application/dto"
	"github.com/jhoicas/inventory-entries/internal/domain"
	"github.com/jhoicas/inventory-entries/pkg/dian"
)

// EntryOptions ajustes de negocio de la entrada de inventario.
type EntryOptions struct {
	// EnforceSerialCount exige que, si se envían seriales, su número sea igual a la cantidad.
	EnforceSerialCount bool
}

// ValidatedEntry es la entrada ya normalizada y validada. Solo ParseInventoryEntry la construye.
type ValidatedEntry struct {
	TenantID     string
	Product      ProductDescriptor
	SupplierNIT  string
	Lot          LotDescriptor
	LocationID   string
	Quantity     decimal.Decimal
	UserID       string
	MovementDate time.Time
	Serials      []string
}

// LotDescriptor datos del lote tal como llegaron. DeclaredQuantity no se persiste.
type LotDescriptor struct {
	LotNumber        string
	ManufactureDate  *time.Time
	ExpirationDate   *time.Time
	DeclaredQuantity decimal.Decimal
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los errores se reportan con el nombre JSON del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseInventoryEntry normaliza y valida la petición. Cualquier error es *domain.ValidationError.
// now se usa como fecha del movimiento cuando la petición no la trae.
func ParseInventoryEntry(tenantID string, in dto.CreateInventoryEntryRequest, opts EntryOptions, now time.Time) (*ValidatedEntry, error) {
	in = normalizeRequest(in)
	fields := make(map[string]string)

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("validar entrada: %w", err)
		}
		for _, fe := range verrs {
			fields[fieldPath(fe.Namespace())] = describeTag(fe)
		}
	}
	if strings.TrimSpace(tenantID) == "" {
		fields["tenant_id"] = "es obligatorio"
	}

	entry := &ValidatedEntry{
		TenantID:    strings.TrimSpace(tenantID),
		SupplierNIT: dian.NormalizeNIT(in.SupplierNIT),
		LocationID:  in.LocationID,
		Quantity:    in.Movement.Quantity,
		UserID:      in.Movement.UserID,
		Serials:     in.Serials,
		Product: ProductDescriptor{
			SKU:        in.Product.SKU,
			Name:       in.Product.Name,
			Barcode:    in.Product.Barcode,
			CategoryID: in.Product.CategoryID,
		},
		Lot: LotDescriptor{
			LotNumber:        in.Lot.LotNumber,
			DeclaredQuantity: in.Lot.InitialQuantity,
		},
	}

	if in.SupplierNIT != "" && entry.SupplierNIT == "" {
		fields["supplier_nit"] = "no contiene dígitos"
	}
	if !in.Movement.Quantity.IsPositive() {
		fields["movement.quantity"] = "debe ser mayor que cero"
	} else if msg := checkStoredNumeric(in.Movement.Quantity); msg != "" {
		fields["movement.quantity"] = msg
	}
	if t := in.Movement.MovementType; t != "" && !strings.EqualFold(t, "IN") {
		fields["movement.movement_type"] = "solo se admite IN"
	}
	if in.Product.CostPrice != nil {
		if in.Product.CostPrice.IsNegative() {
			fields["product.cost_price"] = "no puede ser negativo"
		} else if msg := checkStoredNumeric(*in.Product.CostPrice); msg != "" {
			fields["product.cost_price"] = msg
		}
		entry.Product.Cost = *in.Product.CostPrice
	}
	if in.Product.SalePrice != nil {
		if in.Product.SalePrice.IsNegative() {
			fields["product.sale_price"] = "no puede ser negativo"
		} else if msg := checkStoredNumeric(*in.Product.SalePrice); msg != "" {
			fields["product.sale_price"] = msg
		}
		entry.Product.Price = *in.Product.SalePrice
	}

	var err error
	if entry.Lot.ManufactureDate, err = parseOptionalDate(in.Lot.ManufactureDate); err != nil {
		fields["lot.manufacture_date"] = err.Error()
	}
	if entry.Lot.ExpirationDate, err = parseOptionalDate(in.Lot.ExpirationDate); err != nil {
		fields["lot.expiration_date"] = err.Error()
	}
	if m, e := entry.Lot.ManufactureDate, entry.Lot.ExpirationDate; m != nil && e != nil && e.Before(*m) {
		fields["lot.expiration_date"] = "es anterior a la fecha de fabricación"
	}
	movDate, err := parseOptionalDate(in.Movement.MovementDate)
	switch {
	case err != nil:
		fields["movement.movement_date"] = err.Error()
	case movDate != nil:
		entry.MovementDate = *movDate
	default:
		entry.MovementDate = now
	}

	if opts.EnforceSerialCount && len(in.Serials) > 0 && in.Movement.Quantity.IsPositive() &&
		!in.Movement.Quantity.Equal(decimal.NewFromInt(int64(len(in.Serials)))) {
		fields["serials"] = fmt.Sprintf("se enviaron %d seriales para una cantidad de %s", len(in.Serials), in.Movement.Quantity.String())
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	return entry, nil
}

// normalizeRequest recorta espacios y lleva SKU, nombre y seriales a NFC para que
// dos escrituras equivalentes de un mismo código no creen registros distintos.
func normalizeRequest(in dto.CreateInventoryEntryRequest) dto.CreateInventoryEntryRequest {
	in.Product.SKU = normalizeCode(in.Product.SKU)
	in.Product.Name = norm.NFC.String(strings.TrimSpace(in.Product.Name))
	in.Product.Barcode = strings.TrimSpace(in.Product.Barcode)
	in.Product.CategoryID = strings.TrimSpace(in.Product.CategoryID)
	in.SupplierNIT = strings.TrimSpace(in.SupplierNIT)
	in.LocationID = strings.TrimSpace(in.LocationID)
	in.Lot.LotNumber = normalizeCode(in.Lot.LotNumber)
	in.Movement.UserID = strings.TrimSpace(in.Movement.UserID)
	in.Movement.MovementType = strings.TrimSpace(in.Movement.MovementType)
	if in.Serials != nil {
		serials := make([]string, len(in.Serials))
		for i, s := range in.Serials {
			serials[i] = normalizeCode(s)
		}
		in.Serials = serials
	}
	return in
}

func normalizeCode(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Cantidades y precios se guardan como NUMERIC(18,4).
const numericScale = 4

var numericLimit = decimal.New(1, 18-numericScale)

// checkStoredNumeric rechaza valores que la columna redondearía o no podría guardar.
func checkStoredNumeric(d decimal.Decimal) string {
	if !d.Equal(d.Truncate(numericScale)) {
		return fmt.Sprintf("admite como máximo %d decimales", numericScale)
	}
	if d.Abs().GreaterThanOrEqual(numericLimit) {
		return fmt.Sprintf("debe ser menor que %s", numericLimit.String())
	}
	return ""
}

func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("formato de fecha inválido (use AAAA-MM-DD o RFC3339)")
}

// fieldPath quita el nombre del struct raíz: "CreateInventoryEntryRequest.lot.lot_number" -> "lot.lot_number".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "max":
		return "excede la longitud máxima de " + fe.Param()
	case "unique":
		return "contiene valores repetidos"
	default:
		return "es inválido"
	}
}
