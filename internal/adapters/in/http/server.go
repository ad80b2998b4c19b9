package http

import (
	"context"
	"log/slog"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/deliveryperson"
	"marketplace/internal/core/domain/model/deliveryrequest"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Handler is any use case handler: a command or query in, a result out.
type Handler[In any, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc[In any, Out any] func(ctx context.Context, in In) (Out, error)

func (f HandlerFunc[In, Out]) Handle(ctx context.Context, in In) (Out, error) {
	return f(ctx, in)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder           Handler[commands.CreateOrderCommand, *order.Order]
	SubmitDeliveryRequest Handler[commands.SubmitDeliveryRequestCommand, *deliveryrequest.DeliveryRequest]
	AcceptDeliveryRequest Handler[commands.AcceptDeliveryRequestCommand, *order.Order]
	RejectDeliveryRequest Handler[commands.RejectDeliveryRequestCommand, *deliveryrequest.DeliveryRequest]
	AdvanceOrderStatus    Handler[commands.AdvanceOrderStatusCommand, *order.Order]
	CancelOrder           Handler[commands.CancelOrderCommand, *order.Order]
	UpsertDeliveryPerson  Handler[commands.UpsertDeliveryPersonCommand, *deliveryperson.DeliveryPerson]

	GetOrder                    Handler[queries.GetOrderQuery, *order.Order]
	ListOrders                  Handler[queries.ListOrdersQuery, []*order.Order]
	ListAvailableOrders         Handler[queries.ListAvailableOrdersQuery, []*order.Order]
	ListPendingDeliveryRequests Handler[queries.ListPendingDeliveryRequestsQuery, []queries.PendingDeliveryRequestResponse]
	ListAllOrders               Handler[queries.ListAllOrdersQuery, []*order.Order]
}

// Server translates HTTP requests into commands and queries and maps the
// results and errors back.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// fail writes err as an ErrorResponse. Unclassified errors and the causes of
// conflicts are logged since the client does not see them.
func (s *Server) fail(c echo.Context, err error) error {
	if errs.KindOf(err) == errs.KindInternal {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	} else if conflict, ok := hiddenCause(err); ok {
		s.logger.WarnContext(c.Request().Context(), "Request conflicted",
			"method", c.Request().Method,
			"path", c.Path(),
			"resource", conflict.Resource,
			"cause", conflict.Cause,
		)
	}
	return writeError(c, err)
}

func (s *Server) actor(c echo.Context) (kernel.Actor, error) {
	actor, ok := ActorFrom(c)
	if !ok {
		return kernel.Actor{}, errs.NewNotAuthorizedError(c.Path(), errMissingCredential.Error())
	}
	return actor, nil
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}

	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	items := make([]order.ItemRequest, 0, len(body.LineItems))
	for _, item := range body.LineItems {
		productID, err := kernel.UUIDFromGoogle(item.ProductID)
		if err != nil {
			return s.fail(c, err)
		}
		items = append(items, order.ItemRequest{ProductID: productID, Quantity: item.Quantity})
	}

	address, err := kernel.NewAddress(body.ShippingAddress)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(actor.SubjectID(), items, address)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toOrder(created))
}

// ListCustomerOrders handles GET /api/v1/orders.
func (s *Server) ListCustomerOrders(c echo.Context) error {
	return s.listOrders(c, queries.NewListCustomerOrdersQuery)
}

// ListShopOrders handles GET /api/v1/shop/orders.
func (s *Server) ListShopOrders(c echo.Context) error {
	return s.listOrders(c, queries.NewListShopOrdersQuery)
}

// ListDeliveryPersonOrders handles GET /api/v1/delivery/orders.
func (s *Server) ListDeliveryPersonOrders(c echo.Context) error {
	return s.listOrders(c, queries.NewListDeliveryPersonOrdersQuery)
}

func (s *Server) listOrders(c echo.Context, newQuery func(kernel.UUID) (queries.ListOrdersQuery, error)) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := newQuery(actor.SubjectID())
	if err != nil {
		return s.fail(c, err)
	}

	orders, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrders(orders))
}

// ListAllOrders handles GET /api/v1/owner/orders.
func (s *Server) ListAllOrders(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewListAllOrdersQuery(actor)
	if err != nil {
		return s.fail(c, err)
	}

	orders, err := s.handlers.ListAllOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrders(orders))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(c echo.Context, orderID uuid.UUID) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}

	id, err := kernel.UUIDFromGoogle(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderQuery(id, actor)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrder(o))
}

// ListPendingDeliveryRequests handles GET /api/v1/shop/delivery-requests.
func (s *Server) ListPendingDeliveryRequests(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewListPendingDeliveryRequestsQuery(actor.SubjectID())
	if err != nil {
		return s.fail(c, err)
	}

	requests, err := s.handlers.ListPendingDeliveryRequests.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toPendingDeliveryRequests(requests))
}

// AcceptDeliveryRequest handles PUT /api/v1/shop/delivery-requests/{orderId}/accept.
func (s *Server) AcceptDeliveryRequest(c echo.Context, orderID uuid.UUID) error {
	actor, id, deliveryPersonID, err := s.decision(c, orderID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAcceptDeliveryRequestCommand(id, deliveryPersonID, actor.SubjectID())
	if err != nil {
		return s.fail(c, err)
	}

	assigned, err := s.handlers.AcceptDeliveryRequest.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrder(assigned))
}

// RejectDeliveryRequest handles PUT /api/v1/shop/delivery-requests/{orderId}/reject.
func (s *Server) RejectDeliveryRequest(c echo.Context, orderID uuid.UUID) error {
	actor, id, deliveryPersonID, err := s.decision(c, orderID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewRejectDeliveryRequestCommand(id, deliveryPersonID, actor.SubjectID())
	if err != nil {
		return s.fail(c, err)
	}

	rejected, err := s.handlers.RejectDeliveryRequest.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toDeliveryRequest(rejected))
}

// decision reads the acting shop and the {orderId, deliveryPersonId} pair.
func (s *Server) decision(c echo.Context, orderID uuid.UUID) (kernel.Actor, kernel.UUID, kernel.UUID, error) {
	actor, err := s.actor(c)
	if err != nil {
		return kernel.Actor{}, kernel.UUID{}, kernel.UUID{}, err
	}

	var body DeliveryDecision
	if err := c.Bind(&body); err != nil {
		return kernel.Actor{}, kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	id, err := kernel.UUIDFromGoogle(orderID)
	if err != nil {
		return kernel.Actor{}, kernel.UUID{}, kernel.UUID{}, err
	}
	deliveryPersonID, err := kernel.UUIDFromGoogle(body.DeliveryPersonID)
	if err != nil {
		return kernel.Actor{}, kernel.UUID{}, kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause("deliveryPersonId", err)
	}
	return actor, id, deliveryPersonID, nil
}

// ListAvailableOrders handles GET /api/v1/delivery/orders/available.
func (s *Server) ListAvailableOrders(c echo.Context, params ListAvailableOrdersParams) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}

	city := ""
	if params.City != nil {
		city = *params.City
	}

	query, err := queries.NewListAvailableOrdersQuery(actor.SubjectID(), city)
	if err != nil {
		return s.fail(c, err)
	}

	orders, err := s.handlers.ListAvailableOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrders(orders))
}

// SubmitDeliveryRequest handles PUT /api/v1/delivery/orders/{orderId}/request.
func (s *Server) SubmitDeliveryRequest(c echo.Context, orderID uuid.UUID) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}

	id, err := kernel.UUIDFromGoogle(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewSubmitDeliveryRequestCommand(id, actor.SubjectID())
	if err != nil {
		return s.fail(c, err)
	}

	request, err := s.handlers.SubmitDeliveryRequest.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toDeliveryRequest(request))
}

// AdvanceOrderStatus handles PUT /api/v1/delivery/orders/{orderId}/status.
func (s *Server) AdvanceOrderStatus(c echo.Context, orderID uuid.UUID) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}

	var body StatusChange
	if err := c.Bind(&body); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	id, err := kernel.UUIDFromGoogle(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(id, actor.SubjectID(), body.Status)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.handlers.AdvanceOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrder(updated))
}

// UpsertDeliveryProfile handles PUT /api/v1/delivery/profile.
func (s *Server) UpsertDeliveryProfile(c echo.Context) error {
	actor, err := s.actor(c)
	if err != nil {
		return s.fail(c, err)
	}

	var body DeliveryProfileInput
	if err := c.Bind(&body); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	available := true
	if body.IsAvailable != nil {
		available = *body.IsAvailable
	}

	cmd, err := commands.NewUpsertDeliveryPersonCommand(actor.SubjectID(), body.Name, body.MobileNumber, body.City, available)
	if err != nil {
		return s.fail(c, err)
	}

	profile, err := s.handlers.UpsertDeliveryPerson.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toDeliveryProfile(profile))
}

// CancelOrder handles PUT /api/v1/owner/orders/{orderId}/cancel.
func (s *Server) CancelOrder(c echo.Context, orderID uuid.UUID) error {
	id, err := kernel.UUIDFromGoogle(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	cancelled, err := s.handlers.CancelOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrder(cancelled))
}
