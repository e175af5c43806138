package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carparts/carparts-api/internal/core/domain"
	"github.com/carparts/carparts-api/internal/testutil"
)

const testSecret = "router-test-secret"

type testServer struct {
	e        *echo.Echo
	store    *testutil.Store
	provider *testutil.PaymentProvider
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := testutil.NewStore()
	provider := &testutil.PaymentProvider{Secret: "pi_test_secret"}
	e := NewRouter(Dependencies{
		Parts:           store.Parts,
		Orders:          store.Orders,
		Users:           store.Users,
		Payments:        store.Payments,
		PaymentProvider: provider,
		JWTSecret:       testSecret,
		TokenTTL:        time.Hour,
		Currency:        "usd",
		Logger:          zerolog.Nop(),
	})
	return &testServer{e: e, store: store, provider: provider}
}

func (s *testServer) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

// login upserts email through the public route and returns the issued token.
func (s *testServer) login(t *testing.T, email string) string {
	t.Helper()
	rec := s.do(t, http.MethodPut, "/user/"+email, "", `{"name":"test"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (s *testServer) admin(t *testing.T, email string) string {
	t.Helper()
	s.store.Users.Seed(domain.Document{domain.FieldEmail: email, domain.FieldRole: domain.RoleAdmin})
	return s.login(t, email)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestRouter_Greeting(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello From Car Parts Manufacture", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRouter_TokenGate(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "a@b.c")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@b.c",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})
	expiredToken, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	wrongKey := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@b.c",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	wrongKeyToken, err := wrongKey.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  int
		msg   string
	}{
		{"missing header", "", http.StatusUnauthorized, "unauthorized access"},
		{"garbage", "not-a-jwt", http.StatusForbidden, "forbidden access"},
		{"expired", expiredToken, http.StatusForbidden, "forbidden access"},
		{"wrong key", wrongKeyToken, http.StatusForbidden, "forbidden access"},
		{"valid", token, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodGet, "/user", tt.token, "")
			require.Equal(t, tt.want, rec.Code, rec.Body.String())
			if tt.msg != "" {
				assert.Equal(t, tt.msg, decode[map[string]string](t, rec)["error"])
			}
		})
	}
}

func TestRouter_AdminGate(t *testing.T) {
	s := newTestServer(t)
	userToken := s.login(t, "user@b.c")
	adminToken := s.admin(t, "boss@b.c")

	rec := s.do(t, http.MethodPost, "/part", "", `{"name":"rotor"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodPost, "/part", userToken, `{"name":"rotor"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "forbidden", decode[map[string]string](t, rec)["error"])

	rec = s.do(t, http.MethodPost, "/part", adminToken, `{"name":"rotor","price":80}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	inserted := decode[domain.InsertResult](t, rec)
	assert.True(t, inserted.Acknowledged)

	parts, err := s.store.Parts.List(t.Context())
	require.NoError(t, err)
	assert.Len(t, parts, 1)
}

func TestRouter_AdminGate_DeletedUserIsForbidden(t *testing.T) {
	s := newTestServer(t)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "ghost@b.c",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec := s.do(t, http.MethodDelete, "/part/64b7f0c2a1b2c3d4e5f60718", token, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_PartLifecycle(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.admin(t, "boss@b.c")

	rec := s.do(t, http.MethodPost, "/part", adminToken, `{"name":"brake pad","price":25.5,"quantity":3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	id := decode[domain.InsertResult](t, rec).InsertedID

	rec = s.do(t, http.MethodGet, "/part/"+id, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	part := decode[map[string]any](t, rec)
	assert.Equal(t, "brake pad", part["name"])
	assert.Equal(t, 25.5, part["price"])
	assert.Equal(t, id, part["_id"])

	rec = s.do(t, http.MethodPut, "/part/"+id, "", `{"deliveredQuantity":10}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[domain.UpdateResult](t, rec)
	assert.Equal(t, int64(1), updated.MatchedCount)
	assert.Equal(t, int64(1), updated.ModifiedCount)

	rec = s.do(t, http.MethodGet, "/part/"+id, "", "")
	part = decode[map[string]any](t, rec)
	assert.Equal(t, float64(10), part["quantity"])
	assert.Equal(t, "brake pad", part["name"])

	rec = s.do(t, http.MethodDelete, "/part/"+id, adminToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), decode[domain.DeleteResult](t, rec).DeletedCount)

	rec = s.do(t, http.MethodGet, "/part/"+id, "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRouter_UpdateQuantityUpserts(t *testing.T) {
	s := newTestServer(t)
	const id = "64b7f0c2a1b2c3d4e5f60718"

	rec := s.do(t, http.MethodPut, "/part/"+id, "", `{"deliveredQuantity":4}`)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[domain.UpdateResult](t, rec)
	assert.Equal(t, int64(1), res.UpsertedCount)
	assert.Equal(t, id, res.UpsertedID)

	rec = s.do(t, http.MethodGet, "/part", "", "")
	parts := decode[[]map[string]any](t, rec)
	require.Len(t, parts, 1)
	assert.Equal(t, float64(4), parts[0]["quantity"])
}

func TestRouter_InvalidID(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/part/not-an-id", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_LoginTwice(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPut, "/user/a@b.c", "", `{"name":"Ann","role":"admin"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	first := decode[struct {
		Result domain.UpdateResult `json:"result"`
		Token  string              `json:"token"`
	}](t, rec)
	assert.Equal(t, int64(1), first.Result.UpsertedCount)

	rec = s.do(t, http.MethodPut, "/user/a@b.c", "", `{"name":"Ann B"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	second := decode[struct {
		Result domain.UpdateResult `json:"result"`
		Token  string              `json:"token"`
	}](t, rec)
	assert.Equal(t, int64(1), second.Result.MatchedCount)
	assert.NotEqual(t, first.Token, second.Token)

	rec = s.do(t, http.MethodGet, "/admin/a@b.c", "", "")
	assert.Equal(t, `{"admin":false}`, strings.TrimSpace(rec.Body.String()))

	rec = s.do(t, http.MethodGet, "/user", second.Token, "")
	users := decode[[]map[string]any](t, rec)
	require.Len(t, users, 1)
	assert.Equal(t, "Ann B", users[0]["name"])
}

func TestRouter_Promote(t *testing.T) {
	s := newTestServer(t)
	userToken := s.login(t, "user@b.c")
	adminToken := s.admin(t, "boss@b.c")

	rec := s.do(t, http.MethodPut, "/user/admin/user@b.c", userToken, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodPut, "/user/admin/user@b.c", adminToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), decode[domain.UpdateResult](t, rec).ModifiedCount)

	rec = s.do(t, http.MethodGet, "/admin/user@b.c", "", "")
	assert.Equal(t, `{"admin":true}`, strings.TrimSpace(rec.Body.String()))
}

func TestRouter_AdminCheckUnknownUser(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/admin/nobody@b.c", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"admin":false}`, strings.TrimSpace(rec.Body.String()))
}

func TestRouter_OrderScenario(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "a@b.c")

	rec := s.do(t, http.MethodPost, "/ordered", "", `{"client":"a@b.c","part":"rotor","price":80}`)
	require.Equal(t, http.StatusOK, rec.Code)
	orderID := decode[domain.InsertResult](t, rec).InsertedID

	rec = s.do(t, http.MethodGet, "/ordered?client=a@b.c", "", "")
	orders := decode[[]map[string]any](t, rec)
	require.Len(t, orders, 1)
	assert.Equal(t, orderID, orders[0]["_id"])

	rec = s.do(t, http.MethodGet, "/ordered?client=other@b.c", "", "")
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	rec = s.do(t, http.MethodPost, "/create-payment-intent", token, `{"price":80}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pi_test_secret", decode[map[string]string](t, rec)["clientSecret"])
	require.Len(t, s.provider.Calls, 1)
	assert.Equal(t, int64(8000), s.provider.Calls[0].Amount)

	rec = s.do(t, http.MethodPatch, "/ordered/"+orderID, "", `{"transactionId":"pi_1"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodPatch, "/ordered/"+orderID, token, `{"transactionId":"pi_1","price":80}`)
	require.Equal(t, http.StatusOK, rec.Code)
	paid := decode[domain.MarkPaidResult](t, rec)
	require.NotNil(t, paid.Payment)
	require.NotNil(t, paid.Order)
	assert.True(t, paid.Payment.Acknowledged)
	assert.Equal(t, int64(1), paid.Order.ModifiedCount)

	rec = s.do(t, http.MethodGet, "/ordered/"+orderID, token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	order := decode[map[string]any](t, rec)
	assert.Equal(t, true, order["paid"])
	assert.Equal(t, "pi_1", order["transactionId"])
	assert.Len(t, s.store.Payments.All(), 1)
}

func TestRouter_MarkPaidMalformedIDStoresNoPayment(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "a@b.c")

	rec := s.do(t, http.MethodPatch, "/ordered/not-an-id", token, `{"transactionId":"tx1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid id", decode[map[string]string](t, rec)["error"])
	assert.Empty(t, s.store.Payments.All())
}

func TestRouter_PaymentProviderFailure(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "a@b.c")
	s.provider.Err = errors.New("card network down")

	rec := s.do(t, http.MethodPost, "/create-payment-intent", token, `{"price":10}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestRouter_PaymentRejectedByProviderIs400(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "a@b.c")
	s.provider.Err = fmt.Errorf("%w: amount must be positive", domain.ErrInvalidPayload)

	rec := s.do(t, http.MethodPost, "/create-payment-intent", token, `{"price":-5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid payload", decode[map[string]string](t, rec)["error"])
}

func TestRouter_StoreFailureIs500(t *testing.T) {
	s := newTestServer(t)
	s.store.Parts.FailWith(errors.New("connection reset"))

	rec := s.do(t, http.MethodGet, "/part", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decode[map[string]string](t, rec)["error"])
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/health/ready", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_SwaggerDoc(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/swagger/doc.json", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/create-payment-intent")
}
