package queries

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// GetOrderQueryHandler answers GetOrderQuery. It is the status operation exposed
// to callers that only hold an order ID.
type GetOrderQueryHandler struct {
	reader OrderReader
}

func NewGetOrderQueryHandler(reader OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

// Handle fails with *errs.ObjectNotFoundError for unknown IDs.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	o, err := h.reader.Get(ctx, query.OrderID())
	if err != nil {
		return order.Snapshot{}, err
	}

	return o.Snapshot(), nil
}
