package handler

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"foodpreorder/internal/catalog"
	"foodpreorder/internal/config"
	infrarepo "foodpreorder/internal/infra/repository"
	"foodpreorder/internal/infra/storage"
	"foodpreorder/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test_secret"

// 本物のHS256トークンを署名するissuer（ミドルウェアの検証まで通す）
type hs256Issuer struct {
	secret string
}

func (i *hs256Issuer) Issue(username string, role string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(24 * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  username,
		"role": role,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(i.secret))
	return signed, expiresAt, err
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// 全ハンドラを実リポジトリ（fileストア）で組み立てたechoを返す。
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	store, err := storage.NewFileStore(t.TempDir())
	assert.NoError(t, err)

	catalogRepo := infrarepo.NewCatalogMemoryRepository(catalog.DefaultItems())
	cartRepo := infrarepo.NewCartBlobRepository(store)
	orderRepo := infrarepo.NewOrderBlobRepository(store)

	// JWTのexpは実時刻で検証されるため、過去の固定日時だとトークンが期限切れになる
	clock := fixedClock{now: time.Now().UTC().Truncate(time.Second)}
	idGen := &seqIDGen{}

	cfg := config.Config{
		JWTSecret:     testSecret,
		AdminUsername: "admin",
		AdminPassword: "password123",
		DeliveryFee:   500,
	}

	hash, err := usecase.NewBcryptPasswordHasher(4).Hash(cfg.AdminPassword)
	assert.NoError(t, err)

	e := echo.New()
	NewCatalogHandler(usecase.NewCatalogUsecase(catalogRepo)).RegisterRoutes(e)
	NewCartHandler(usecase.NewCartUsecase(cartRepo, catalogRepo)).RegisterRoutes(e)
	NewOrderHandler(usecase.NewCheckoutUsecase(cartRepo, orderRepo, idGen, clock, cfg.DeliveryFee)).RegisterRoutes(e)
	NewAuthHandler(usecase.NewAdminAuthUsecase(
		cfg.AdminUsername, hash,
		usecase.NewBcryptPasswordVerifier(),
		&hs256Issuer{secret: testSecret}, clock,
	)).RegisterRoutes(e)
	NewAdminOrderHandler(usecase.NewAdminOrderUsecase(orderRepo, catalogRepo, idGen, clock)).RegisterRoutes(e, cfg)

	return e
}

type seqIDGen struct{ n int }

func (g *seqIDGen) NewID() string {
	g.n++
	return "id-" + strconv.Itoa(g.n)
}

func doJSON(e *echo.Echo, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func adminToken(t *testing.T, role string) string {
	t.Helper()
	signed, _, err := (&hs256Issuer{secret: testSecret}).Issue("admin", role, time.Now())
	assert.NoError(t, err)
	return signed
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
