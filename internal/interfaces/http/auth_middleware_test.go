package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sales-auth-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/sales-auth-api/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/sales-auth-api/pkg/jwt"
)

const testMiddlewareUserID = "00000000-0000-0000-0000-000000000001"

// buildGuardedApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el token y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildGuardedApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"ok":   true,
				"id":   apphttp.GetUserID(c),
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testMiddlewareUserID, role, testIssuer, 7)
	require.NoError(t, err, "debe generarse un token válido")
	return tok
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Caso 1: rol permitido → 200 y locals poblados.
func TestRequireRole_RolPermitido(t *testing.T) {
	app := buildGuardedApp(entity.RoleAdmin)
	resp := doProtected(t, app, "Bearer "+tokenForRole(t, entity.RoleAdmin))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testMiddlewareUserID, body["id"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
}

// Caso 1b: multi-rol — cualquiera de los permitidos pasa.
func TestRequireRole_MultiRol(t *testing.T) {
	app := buildGuardedApp(entity.RoleAdmin, entity.RoleGerente)
	resp := doProtected(t, app, "Bearer "+tokenForRole(t, entity.RoleGerente))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 2: rol distinto al requerido → 403.
func TestRequireRole_RolBloqueado(t *testing.T) {
	app := buildGuardedApp(entity.RoleAdmin)
	resp := doProtected(t, app, "Bearer "+tokenForRole(t, entity.RoleComercial))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 3: token sin claim de rol → 401.
func TestRequireRole_TokenSinRol(t *testing.T) {
	app := buildGuardedApp(entity.RoleAdmin)
	resp := doProtected(t, app, "Bearer "+tokenForRole(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Casos de header: ausente, mal formado, esquema equivocado, token inválido.
func TestAuthMiddleware_HeadersInvalidos(t *testing.T) {
	app := buildGuardedApp(entity.RoleAdmin)

	for _, header := range []string{
		"",
		"Bearer",
		"Basic abc123",
		"Bearer ",
		"Bearer no-es-un-jwt",
	} {
		resp := doProtected(t, app, header)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
		resp.Body.Close()
	}
}

// Token firmado con otro secret → 401.
func TestAuthMiddleware_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret", testMiddlewareUserID, entity.RoleAdmin, testIssuer, 7)
	require.NoError(t, err)

	app := buildGuardedApp(entity.RoleAdmin)
	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
