package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/greenmart/pos/internal/models"
	"github.com/greenmart/pos/internal/register"
	"github.com/greenmart/pos/internal/repo"
	"github.com/greenmart/pos/internal/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB

	Products   *ProductHTTP
	Categories *CategoryHTTP
	Orders     *OrderHTTP
	Registers  *RegisterHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, repo.Migrate(db))

	gormRepo := &repo.GormRepo{DB: db}
	catalogSvc := &service.CatalogService{Repo: gormRepo}
	orderSvc := &service.OrderService{Repo: gormRepo}

	return &testEnv{
		T:          t,
		E:          echo.New(),
		DB:         db,
		Products:   &ProductHTTP{Svc: catalogSvc},
		Categories: &CategoryHTTP{Svc: &service.CategoryService{Repo: gormRepo}},
		Orders:     &OrderHTTP{Svc: orderSvc},
		Registers: &RegisterHTTP{
			Store:   register.NewStore(),
			Catalog: catalogSvc,
			Orders:  orderSvc,
		},
	}
}

func (env *testEnv) doJSON(method, path string, body any) (*httptest.ResponseRecorder, echo.Context) {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, env.E.NewContext(req, rec)
}

func (env *testEnv) seedProduct(p models.Product) models.Product {
	env.T.Helper()
	require.NoError(env.T, env.DB.Create(&p).Error)
	return p
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, code, he.Code)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
