package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-entries/internal/application/dto"
)

// Locals keys para CompanyID en Fiber.
const (
	LocalCompanyID = "company_id"

	DefaultTenantHeader = "X-Company-ID"
)

// TenantContext copia la empresa que propaga el gateway (cabecera header) a c.Locals.
// No autentica: el gateway ya lo hizo. Sin cabecera responde 401.
func TenantContext(header string) fiber.Handler {
	if header == "" {
		header = DefaultTenantHeader
	}
	return func(c *fiber.Ctx) error {
		companyID := strings.TrimSpace(c.Get(header))
		if companyID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_TENANT",
				Message: "cabecera " + header + " requerida",
			})
		}
		c.Locals(LocalCompanyID, companyID)
		return c.Next()
	}
}

// GetCompanyID devuelve el CompanyID del contexto (después de TenantContext).
func GetCompanyID(c *fiber.Ctx) string {
	v := c.Locals(LocalCompanyID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
