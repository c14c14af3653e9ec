// Package docs registers the order API document with swag, which is where
// echo-swagger's UI handler reads doc.json from. Import it for its side effect.
package docs

import (
	"encoding/json"

	"orderflow/internal/generated/servers"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Order Lifecycle API",
	Description:      "Creates orders and moves them through Pending, Confirmed, Delivered and Cancelled.",
	InfoInstanceName: swag.Name,
	SwaggerTemplate:  docTemplate(),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

// docTemplate renders the OpenAPI document as JSON. The document carries no
// template actions, so swag hands it to the UI unchanged.
func docTemplate() string {
	swagger, err := servers.GetSwagger()
	if err != nil {
		panic(err)
	}

	doc, err := json.Marshal(swagger)
	if err != nil {
		panic(err)
	}

	return string(doc)
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
