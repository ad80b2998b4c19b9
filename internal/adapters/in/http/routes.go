package http

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ListAvailableOrdersParams are the query parameters of ListAvailableOrders.
type ListAvailableOrdersParams struct {
	City *string `form:"city,omitempty" json:"city,omitempty"`
}

// wrapper binds path and query parameters before calling the server.
type wrapper struct {
	server *Server
}

func (w wrapper) orderID(c echo.Context) (uuid.UUID, error) {
	var orderID uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", c.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid format for parameter orderId: %w", err)
	}
	return orderID, nil
}

func (w wrapper) withOrderID(handle func(echo.Context, uuid.UUID) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		orderID, err := w.orderID(c)
		if err != nil {
			return badRequest(c, err.Error())
		}
		return handle(c, orderID)
	}
}

func (w wrapper) ListAvailableOrders(c echo.Context) error {
	var params ListAvailableOrdersParams
	if err := runtime.BindQueryParameter("form", true, false, "city", c.QueryParams(), &params.City); err != nil {
		return badRequest(c, fmt.Sprintf("invalid format for parameter city: %s", err))
	}
	return w.server.ListAvailableOrders(c, params)
}

// RegisterHandlers mounts the API under /api/v1. Every route requires a
// bearer token; role checks are applied per group.
func RegisterHandlers(router *echo.Echo, server *Server, auth *TokenAuthenticator, middlewares ...echo.MiddlewareFunc) {
	w := wrapper{server: server}

	api := router.Group("/api/v1", append([]echo.MiddlewareFunc{auth.Middleware()}, middlewares...)...)

	// Customer routes share the /api/v1 prefix, so the role check is per
	// route. A group here would also guard unmatched /api/v1 paths.
	customerOnly := RequireRole(kernel.RoleCustomer)
	api.POST("/orders", server.CreateOrder, customerOnly)
	api.GET("/orders", server.ListCustomerOrders, customerOnly)

	api.GET("/orders/:orderId", w.withOrderID(server.GetOrder))

	shop := api.Group("/shop", RequireRole(kernel.RoleAdmin))
	shop.GET("/orders", server.ListShopOrders)
	shop.GET("/delivery-requests", server.ListPendingDeliveryRequests)
	shop.PUT("/delivery-requests/:orderId/accept", w.withOrderID(server.AcceptDeliveryRequest))
	shop.PUT("/delivery-requests/:orderId/reject", w.withOrderID(server.RejectDeliveryRequest))

	delivery := api.Group("/delivery", RequireRole(kernel.RoleDeliveryPerson))
	delivery.GET("/orders/available", w.ListAvailableOrders)
	delivery.GET("/orders", server.ListDeliveryPersonOrders)
	delivery.PUT("/orders/:orderId/request", w.withOrderID(server.SubmitDeliveryRequest))
	delivery.PUT("/orders/:orderId/status", w.withOrderID(server.AdvanceOrderStatus))
	delivery.PUT("/profile", server.UpsertDeliveryProfile)

	owner := api.Group("/owner", RequireRole(kernel.RoleAppOwner))
	owner.GET("/orders", server.ListAllOrders)
	owner.PUT("/orders/:orderId/cancel", w.withOrderID(server.CancelOrder))
}
