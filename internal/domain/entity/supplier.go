package entity

import "time"

// Supplier representa un proveedor de la empresa, identificado por su NIT.
type Supplier struct {
	ID        string
	CompanyID string
	NIT       string // normalizado: solo dígitos, incluye dígito de verificación si se registró
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
