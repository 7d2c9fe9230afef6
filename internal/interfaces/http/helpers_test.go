package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/sales-auth-api/internal/application/auth"
	"github.com/tu-usuario/sales-auth-api/internal/application/usecase"
	"github.com/tu-usuario/sales-auth-api/internal/domain"
	"github.com/tu-usuario/sales-auth-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/sales-auth-api/internal/interfaces/http"
	"github.com/tu-usuario/sales-auth-api/pkg/logger"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "sales-auth-api-test"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeUserRepo implementación en memoria del puerto de persistencia.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email || existing.UserName == u.UserName {
			return domain.ErrUserAlreadyExists
		}
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByIdentifier(identifier string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == identifier || u.UserName == identifier {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmailOrUserName(email, userName string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email || u.UserName == userName {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUserRepo) Save(u *entity.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

// buildTestApp monta el router completo sobre el repo en memoria.
func buildTestApp(repo *fakeUserRepo) *fiber.App {
	log := logger.Nop()
	authUC := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:  testJWTSecret,
		ExpDays: 7,
		Issuer:  testIssuer,
	})
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    authUC,
		UserUC:    usecase.NewUserUseCase(repo),
		SaleUC:    usecase.NewSaleUseCase(repo),
		Log:       log,
		JWTSecret: testJWTSecret,
	})
	return app
}

// seedUser inserta un usuario directamente en el repo, con el password ya
// hasheado como lo dejaría el alta.
func seedUser(t *testing.T, repo *fakeUserRepo, id, userName, email, password, role string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		ID:           id,
		UserName:     userName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(u))
	return u
}

// doJSON lanza una petición con cuerpo JSON y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// doRawJSON ídem doJSON pero con el cuerpo ya serializado (para JSON malformado
// o tipos arbitrarios por campo).
func doRawJSON(t *testing.T, app *fiber.App, method, path, raw string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(raw)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// authedRequest arma una petición con Bearer token.
func authedRequest(t *testing.T, method, path, token string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// decodeBody decodifica la respuesta en un mapa genérico.
func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// readBody devuelve el cuerpo completo como string.
func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}
