package http

import (
	"errors"
	"log/slog"
	"net/http"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/generated/servers"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	advanceOrderHandler commands.AdvanceOrderCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		advanceOrderHandler:    advanceOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		getOrderHandler:        getOrderHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - creates a new Pending order.
// The body is optional; without an id one is generated.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID := kernel.NewUUID()
	if body.Id != nil {
		var err error
		if orderID, err = kernel.UUIDFromString(body.Id.String()); err != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid order id: " + err.Error(),
			})
		}
	}

	cmd, err := commands.NewCreateOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	snapshot, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, toOrder(snapshot))
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves Pending and Confirmed orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	snapshots, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve orders")
	}

	response := make([]servers.Order, len(snapshots))
	for i, snapshot := range snapshots {
		response[i] = toOrder(snapshot)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toOrderID(orderId)
	if err != nil {
		return s.errorResponse(ctx, err, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.errorResponse(ctx, err, "Invalid order id")
	}

	snapshot, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toOrder(snapshot))
}

// AdvanceOrder handles POST /api/v1/orders/{orderId}/advance.
func (s *Server) AdvanceOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toOrderID(orderId)
	if err != nil {
		return s.errorResponse(ctx, err, "Invalid order id")
	}

	cmd, err := commands.NewAdvanceOrderCommand(id)
	if err != nil {
		return s.errorResponse(ctx, err, "Invalid order id")
	}

	snapshot, err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to advance order")
	}

	return ctx.JSON(http.StatusOK, toOrder(snapshot))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toOrderID(orderId)
	if err != nil {
		return s.errorResponse(ctx, err, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.errorResponse(ctx, err, "Invalid order id")
	}

	snapshot, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to cancel order")
	}

	return ctx.JSON(http.StatusOK, toOrder(snapshot))
}

// errorResponse maps use case errors onto the API's status codes:
// illegal transitions and duplicates are 409, missing orders 404, bad input 400.
func (s *Server) errorResponse(ctx echo.Context, err error, fallback string) error {
	var transitionErr *order.InvalidTransitionError
	switch {
	case errors.As(err, &transitionErr):
		return ctx.JSON(http.StatusConflict, servers.TransitionError{
			Code:      http.StatusConflict,
			Message:   transitionErr.Reason,
			Operation: servers.TransitionErrorOperation(transitionErr.Operation),
			Stage:     toStage(transitionErr.Stage),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Order already exists",
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: fallback + ": " + err.Error(),
		})
	}

	slog.ErrorContext(ctx.Request().Context(), fallback,
		slog.String("method", ctx.Request().Method),
		slog.String("path", ctx.Path()),
		slog.Any("error", err))

	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: fallback,
	})
}

func toOrderID(orderId servers.OrderId) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(orderId[:])
}

func toOrder(snapshot order.Snapshot) servers.Order {
	return servers.Order{
		Id:        snapshot.ID.Bytes(),
		Stage:     toStage(snapshot.Stage),
		CreatedAt: snapshot.CreatedAt,
		UpdatedAt: snapshot.UpdatedAt,
	}
}

func toStage(stage order.Stage) servers.OrderStage {
	return servers.OrderStage(stage.String())
}
