package http

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

type openAPIDocument struct {
	json string
}

func (d openAPIDocument) ReadDoc() string {
	return d.json
}

// RegisterSwaggerUI serves the UI under /swagger/ with doc as doc.json.
// The document is registered with swag once per process.
func RegisterSwaggerUI(router *echo.Echo, doc *openapi3.T) error {
	if swag.GetSwagger(swag.Name) == nil {
		raw, err := doc.MarshalJSON()
		if err != nil {
			return err
		}
		swag.Register(swag.Name, openAPIDocument{json: string(raw)})
	}

	router.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
