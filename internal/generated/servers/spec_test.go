package servers_test

import (
	"net/http"
	"testing"

	"orderflow/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)

	require.NoError(t, swagger.Validate(t.Context()))
	assert.Equal(t, "Order Lifecycle API", swagger.Info.Title)

	t.Run("should describe every registered route", func(t *testing.T) {
		routes := map[string]string{
			"/api/v1/orders":                   http.MethodPost,
			"/api/v1/orders/active":            http.MethodGet,
			"/api/v1/orders/{orderId}":         http.MethodGet,
			"/api/v1/orders/{orderId}/advance": http.MethodPost,
			"/api/v1/orders/{orderId}/cancel":  http.MethodPost,
		}

		for path, method := range routes {
			item := swagger.Paths.Find(path)
			require.NotNil(t, item, path)
			assert.NotNil(t, item.GetOperation(method), "%s %s", method, path)
		}
	})

	t.Run("should list the four stages", func(t *testing.T) {
		stage := swagger.Components.Schemas["OrderStage"]
		require.NotNil(t, stage)

		assert.ElementsMatch(t,
			[]any{string(servers.Pending), string(servers.Confirmed), string(servers.Delivered), string(servers.Cancelled)},
			stage.Value.Enum)
	})
}
