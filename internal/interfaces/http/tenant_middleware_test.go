package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/inventory-entries/internal/interfaces/http"
)

func tenantApp(header string) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", apphttp.TenantContext(header), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"company_id": apphttp.GetCompanyID(c)})
	})
	return app
}

func TestTenantContext(t *testing.T) {
	cases := []struct {
		name       string
		header     string
		sendHeader string
		value      string
		wantStatus int
		wantID     string
	}{
		{"cabecera por defecto", "", apphttp.DefaultTenantHeader, testCompanyID, fiber.StatusOK, testCompanyID},
		{"cabecera configurada", "X-Tenant", "X-Tenant", " empresa-9 ", fiber.StatusOK, "empresa-9"},
		{"sin cabecera", "", "", "", fiber.StatusUnauthorized, ""},
		{"cabecera distinta a la configurada", "X-Tenant", apphttp.DefaultTenantHeader, testCompanyID, fiber.StatusUnauthorized, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.sendHeader != "" {
				req.Header.Set(tc.sendHeader, tc.value)
			}
			resp, err := tenantApp(tc.header).Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			if tc.wantStatus != fiber.StatusOK {
				return
			}
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var out map[string]string
			require.NoError(t, json.Unmarshal(body, &out))
			assert.Equal(t, tc.wantID, out["company_id"])
		})
	}
}
