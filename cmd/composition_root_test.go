package cmd_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orderflow/cmd"
	httpin "orderflow/internal/adapters/in/http"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() cmd.Config {
	return cmd.Config{
		HTTPPort:        "8080",
		Storage:         cmd.StorageMemory,
		PendingOrderTTL: time.Minute,
		ExpirySchedule:  "@every 1h",
	}
}

func TestInMemoryCompositionRoot(t *testing.T) {
	root := cmd.NewInMemoryCompositionRoot(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	t.Run("handlers share one store", func(t *testing.T) {
		id := kernel.NewUUID()
		createCmd, err := commands.NewCreateOrderCommand(id)
		require.NoError(t, err)
		_, err = root.CreateCreateOrderCommandHandler().Handle(t.Context(), createCmd)
		require.NoError(t, err)

		advanceCmd, err := commands.NewAdvanceOrderCommand(id)
		require.NoError(t, err)
		snapshot, err := root.CreateAdvanceOrderCommandHandler().Handle(t.Context(), advanceCmd)
		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, snapshot.Stage)

		rec := httptest.NewRecorder()
		e := echo.New()
		httpin.RegisterRoutes(e, root.CreateHTTPServer())
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+id.String(), nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"stage":"Confirmed"`)
	})

	t.Run("job manager starts with configured schedule", func(t *testing.T) {
		jm := root.CreateJobManager()

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})
}

func TestConfig(t *testing.T) {
	t.Run("DSN", func(t *testing.T) {
		cfg := cmd.Config{
			DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "orders", DBSslMode: "disable",
		}

		assert.Equal(t, "host=db port=5432 user=u password=p dbname=orders sslmode=disable", cfg.DSN())
	})

	t.Run("Validate", func(t *testing.T) {
		require.NoError(t, testConfig().Validate())

		bad := testConfig()
		bad.Storage = "redis"
		assert.ErrorContains(t, bad.Validate(), "STORAGE")

		bad = testConfig()
		bad.PendingOrderTTL = 0
		assert.ErrorContains(t, bad.Validate(), "PENDING_ORDER_TTL")

		bad = testConfig()
		bad.HTTPPort = ""
		assert.ErrorContains(t, bad.Validate(), "HTTP_PORT")
	})
}
