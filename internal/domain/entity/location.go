package entity

import "time"

// Location es el lugar físico o lógico que recibe el stock (bodega, planta, punto de venta).
type Location struct {
	ID               string
	CompanyID        string
	Name             string
	IsProductionSite bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
