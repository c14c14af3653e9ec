// Package servers holds the HTTP contract of the order API: the OpenAPI document,
// its models and the echo server scaffolding. Everything here mirrors openapi.yaml;
// change the document first and keep these declarations in step with it.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for OrderStage.
const (
	Cancelled OrderStage = "Cancelled"
	Confirmed OrderStage = "Confirmed"
	Delivered OrderStage = "Delivered"
	Pending   OrderStage = "Pending"
)

// Defines values for TransitionErrorOperation.
const (
	Advance TransitionErrorOperation = "advance"
	Cancel  TransitionErrorOperation = "cancel"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	// Id Client-chosen identifier; generated when omitted
	Id *openapi_types.UUID `json:"id,omitempty"`
}

// Order defines model for Order.
type Order struct {
	CreatedAt time.Time          `json:"createdAt"`
	Id        openapi_types.UUID `json:"id"`
	Stage     OrderStage         `json:"stage"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// OrderStage defines model for OrderStage.
type OrderStage string

// TransitionError defines model for TransitionError.
type TransitionError struct {
	Code      int                      `json:"code"`
	Message   string                   `json:"message"`
	Operation TransitionErrorOperation `json:"operation"`
	Stage     OrderStage               `json:"stage"`
}

// TransitionErrorOperation defines model for TransitionError.Operation.
type TransitionErrorOperation string

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder
