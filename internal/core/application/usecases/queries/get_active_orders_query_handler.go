package queries

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// GetActiveOrdersQueryHandler lists Pending and Confirmed orders, oldest first.
//
//	handler := NewGetActiveOrdersQueryHandler(repo)
//	active, err := handler.Handle(ctx, NewGetActiveOrdersQuery())
type GetActiveOrdersQueryHandler struct {
	reader OrderReader
}

func NewGetActiveOrdersQueryHandler(reader OrderReader) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{reader: reader}
}

func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	snapshots := make([]order.Snapshot, 0, len(orders))
	for _, o := range orders {
		snapshots = append(snapshots, o.Snapshot())
	}

	return snapshots, nil
}
