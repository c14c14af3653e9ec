// Package orderrepo persists order aggregates with GORM.
// It maps between the domain aggregate and the orders table and translates
// driver errors into the errs kinds the application layer understands.
package orderrepo

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row stored in the orders table.
// Timestamps are owned by the domain, so GORM's automatic tracking is disabled.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Stage     int       `gorm:"type:smallint;not null;index"`
	CreatedAt time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its row, reading a consistent snapshot.
func fromDomain(aggregate *order.Order) OrderDTO {
	snapshot := aggregate.Snapshot()

	return OrderDTO{
		ID:        snapshot.ID.Bytes(),
		Stage:     int(snapshot.Stage),
		CreatedAt: snapshot.CreatedAt,
		UpdatedAt: snapshot.UpdatedAt,
	}
}

// toDomain rebuilds the aggregate with RestoreOrder, so a corrupt row fails validation.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, order.Stage(dto.Stage), dto.CreatedAt, dto.UpdatedAt)
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
