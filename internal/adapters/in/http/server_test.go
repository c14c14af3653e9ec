package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpin "orderflow/internal/adapters/in/http"
	"orderflow/internal/adapters/out/memory"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uowFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f uowFactory) Create() commands.OrderUoW {
	return f.factory.Create()
}

func newTestEcho() *echo.Echo {
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	orderUoWFactory := uowFactory{factory: factory}
	reader := factory.Create().OrderRepository()

	server := httpin.NewServer(
		commands.NewCreateOrderCommandHandler(orderUoWFactory),
		commands.NewAdvanceOrderCommandHandler(orderUoWFactory),
		commands.NewCancelOrderCommandHandler(orderUoWFactory),
		queries.NewGetOrderQueryHandler(reader),
		queries.NewGetActiveOrdersQueryHandler(reader),
	)

	e := echo.New()
	httpin.RegisterRoutes(e, server)
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func createOrder(t *testing.T, e *echo.Echo) servers.Order {
	t.Helper()

	rec := do(t, e, http.MethodPost, "/api/v1/orders", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[servers.Order](t, rec)
}

func TestServer_CreateOrder(t *testing.T) {
	t.Run("should create pending order with generated id", func(t *testing.T) {
		e := newTestEcho()

		created := createOrder(t, e)

		assert.NotEqual(t, uuid.Nil, created.Id)
		assert.Equal(t, servers.Pending, created.Stage)
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("should honour client id and reject duplicates", func(t *testing.T) {
		e := newTestEcho()
		id := uuid.New()
		body := `{"id":"` + id.String() + `"}`

		rec := do(t, e, http.MethodPost, "/api/v1/orders", body)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, id, decode[servers.Order](t, rec).Id)

		rec = do(t, e, http.MethodPost, "/api/v1/orders", body)
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, http.StatusConflict, decode[servers.Error](t, rec).Code)
	})

	t.Run("should reject malformed body", func(t *testing.T) {
		rec := do(t, newTestEcho(), http.MethodPost, "/api/v1/orders", `{"id":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject nil id", func(t *testing.T) {
		rec := do(t, newTestEcho(), http.MethodPost, "/api/v1/orders", `{"id":"`+uuid.Nil.String()+`"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_GetOrder(t *testing.T) {
	e := newTestEcho()
	created := createOrder(t, e)

	t.Run("should return stored order", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/v1/orders/"+created.Id.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[servers.Order](t, rec)
		assert.Equal(t, created.Id, got.Id)
		assert.Equal(t, servers.Pending, got.Stage)
	})

	t.Run("should return 404 for unknown order", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/v1/orders/"+uuid.NewString(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should return 400 for malformed id", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/v1/orders/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Lifecycle(t *testing.T) {
	e := newTestEcho()
	created := createOrder(t, e)
	base := "/api/v1/orders/" + created.Id.String()

	rec := do(t, e, http.MethodPost, base+"/advance", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, servers.Confirmed, decode[servers.Order](t, rec).Stage)

	rec = do(t, e, http.MethodPost, base+"/advance", "")
	require.Equal(t, http.StatusOK, rec.Code)
	delivered := decode[servers.Order](t, rec)
	assert.Equal(t, servers.Delivered, delivered.Stage)
	assert.False(t, delivered.UpdatedAt.Before(delivered.CreatedAt))

	rec = do(t, e, http.MethodPost, base+"/cancel", "")
	require.Equal(t, http.StatusConflict, rec.Code)
	transitionErr := decode[servers.TransitionError](t, rec)
	assert.Equal(t, http.StatusConflict, transitionErr.Code)
	assert.Equal(t, servers.Cancel, transitionErr.Operation)
	assert.Equal(t, servers.Delivered, transitionErr.Stage)
	assert.Equal(t, "delivered product can't be cancelled", transitionErr.Message)

	rec = do(t, e, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, servers.Delivered, decode[servers.Order](t, rec).Stage, "rejected cancel changes nothing")
}

func TestServer_CancelledOrderRejectsAdvance(t *testing.T) {
	e := newTestEcho()
	created := createOrder(t, e)
	base := "/api/v1/orders/" + created.Id.String()

	rec := do(t, e, http.MethodPost, base+"/cancel", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, servers.Cancelled, decode[servers.Order](t, rec).Stage)

	rec = do(t, e, http.MethodPost, base+"/advance", "")
	require.Equal(t, http.StatusConflict, rec.Code)
	transitionErr := decode[servers.TransitionError](t, rec)
	assert.Equal(t, servers.Advance, transitionErr.Operation)
	assert.Equal(t, servers.Cancelled, transitionErr.Stage)
	assert.Equal(t, "cancelled orders cannot be processed", transitionErr.Message)
}

func TestServer_TransitionUnknownOrder(t *testing.T) {
	e := newTestEcho()

	for _, op := range []string{"advance", "cancel"} {
		rec := do(t, e, http.MethodPost, "/api/v1/orders/"+uuid.NewString()+"/"+op, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, op)
	}
}

func TestServer_GetActiveOrders(t *testing.T) {
	e := newTestEcho()

	rec := do(t, e, http.MethodGet, "/api/v1/orders/active", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]servers.Order](t, rec))

	first := createOrder(t, e)
	second := createOrder(t, e)
	cancelled := createOrder(t, e)
	require.Equal(t, http.StatusOK,
		do(t, e, http.MethodPost, "/api/v1/orders/"+cancelled.Id.String()+"/cancel", "").Code)
	require.Equal(t, http.StatusOK,
		do(t, e, http.MethodPost, "/api/v1/orders/"+second.Id.String()+"/advance", "").Code)

	rec = do(t, e, http.MethodGet, "/api/v1/orders/active", "")
	require.Equal(t, http.StatusOK, rec.Code)
	active := decode[[]servers.Order](t, rec)

	ids := make([]uuid.UUID, 0, len(active))
	for _, o := range active {
		ids = append(ids, o.Id)
	}
	assert.ElementsMatch(t, []uuid.UUID{first.Id, second.Id}, ids)
}

func TestRegisterRoutes_Infrastructure(t *testing.T) {
	e := newTestEcho()

	rec := do(t, e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())

	rec = do(t, e, http.MethodGet, "/api/v1/openapi.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := decode[map[string]any](t, rec)
	assert.Equal(t, "3.0.3", doc["openapi"])

	rec = do(t, e, http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
