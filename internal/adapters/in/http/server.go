// Package http exposes the order workflow over a JSON REST API built on echo.
// The acting principal is taken from the X-User-ID and X-User-Role headers;
// authentication itself happens upstream at the gateway.
package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Headers carrying the acting principal.
const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	updateOrderStatusHandler    commands.UpdateOrderStatusCommandHandler
	assignAgentHandler          commands.AssignAgentCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	completeDeliveryHandler     commands.CompleteDeliveryCommandHandler
	reportIssueHandler          commands.ReportIssueCommandHandler

	// Query handlers
	trackOrderHandler        queries.TrackOrderQueryHandler
	agentEarningsHandler     queries.GetAgentEarningsQueryHandler
	overdueDeliveriesHandler queries.GetOverdueDeliveriesQueryHandler

	cartStore ports.CartStore
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignAgentHandler commands.AssignAgentCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	reportIssueHandler commands.ReportIssueCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	agentEarningsHandler queries.GetAgentEarningsQueryHandler,
	overdueDeliveriesHandler queries.GetOverdueDeliveriesQueryHandler,
	cartStore ports.CartStore,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		cancelOrderHandler:          cancelOrderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		assignAgentHandler:          assignAgentHandler,
		updateDeliveryStatusHandler: updateDeliveryStatusHandler,
		completeDeliveryHandler:     completeDeliveryHandler,
		reportIssueHandler:          reportIssueHandler,
		trackOrderHandler:           trackOrderHandler,
		agentEarningsHandler:        agentEarningsHandler,
		overdueDeliveriesHandler:    overdueDeliveriesHandler,
		cartStore:                   cartStore,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/assign", s.AssignAgent)
	api.PATCH("/orders/:id/delivery-status", s.UpdateDeliveryStatus)
	api.POST("/orders/:id/complete", s.CompleteDelivery)
	api.POST("/orders/:id/issues", s.ReportIssue)

	api.GET("/orders/track/:number", s.TrackOrder)
	api.GET("/orders/overdue", s.OverdueDeliveries)
	api.GET("/agents/:id/earnings", s.AgentEarnings)

	api.GET("/customers/:id/cart", s.GetCart)
	api.PUT("/customers/:id/cart", s.PutCart)

	e.GET("/health", s.Health)
}

// CreateOrder handles POST /api/v1/orders - places a new order for the
// calling customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	items := make([]commands.CreateOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, idErr := kernel.UUIDFromString(item.ProductID)
		if idErr != nil {
			return badRequest(ctx, idErr)
		}
		items = append(items, commands.CreateOrderItem{ProductID: productID, Quantity: item.Quantity})
	}

	city, err := kernel.NewCity(req.City)
	if err != nil {
		return fail(ctx, err)
	}

	paymentMethod, err := order.NewPaymentMethod(req.PaymentMethod)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customerID, items,
		req.Street, city, req.Latitude, req.Longitude,
		paymentMethod, req.Urgent,
	)
	if err != nil {
		return fail(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderResponse{
		ID:                    created.ID().String(),
		Number:                created.Number().String(),
		Status:                created.Status().String(),
		TotalAmount:           created.TotalAmount(),
		DeliveryFee:           created.DeliveryFee(),
		FinalAmount:           created.FinalAmount(),
		EstimatedDeliveryTime: created.EstimatedDeliveryTime(),
	})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels the calling
// customer's order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, customerID, req.Reason)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - seller or admin
// driven status change.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	role, err := kernel.NewRole(ctx.Request().Header.Get(headerUserRole))
	if err != nil {
		return fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, actor, role, target, req.Message)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignAgent handles POST /api/v1/orders/:id/assign - the calling delivery
// agent claims the order.
func (s *Server) AssignAgent(ctx echo.Context) error {
	agentID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignAgentCommand(orderID, agentID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.assignAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryStatus handles PATCH /api/v1/orders/:id/delivery-status - the
// assigned agent reports pickup or delivery.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	agentID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req DeliveryStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(orderID, agentID, req.Status, req.Message, req.Location)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/orders/:id/complete - the assigned
// agent hands over the order.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	agentID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CompleteDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, agentID, req.Note, req.ProofOfDelivery)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReportIssue handles POST /api/v1/orders/:id/issues - a participant reports
// a problem with the order.
func (s *Server) ReportIssue(ctx echo.Context) error {
	reporterID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req ReportIssueRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewReportIssueCommand(orderID, reporterID, req.Type, req.Description)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.reportIssueHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// TrackOrder handles GET /api/v1/orders/track/:number - the public tracking
// view of an order.
func (s *Server) TrackOrder(ctx echo.Context) error {
	number, err := kernel.OrderNumberFromString(ctx.Param("number"))
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewTrackOrderQuery(number)
	if err != nil {
		return fail(ctx, err)
	}

	tracking, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	resp := TrackingResponse{
		Number:                tracking.Number,
		Status:                tracking.Status,
		TotalAmount:           tracking.TotalAmount,
		DeliveryFee:           tracking.DeliveryFee,
		FinalAmount:           tracking.FinalAmount,
		EstimatedDeliveryTime: tracking.EstimatedDeliveryTime,
		ActualDeliveryTime:    tracking.ActualDeliveryTime,
		DeliveryAgentID:       tracking.DeliveryAgentID,
		Events:                make([]TrackingEventResponse, 0, len(tracking.Events)),
	}
	for _, event := range tracking.Events {
		resp.Events = append(resp.Events, TrackingEventResponse{
			Status:    event.Status,
			Message:   event.Message,
			Location:  event.Location,
			Timestamp: event.Timestamp,
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

// OverdueDeliveries handles GET /api/v1/orders/overdue - lists deliveries
// past their estimate.
func (s *Server) OverdueDeliveries(ctx echo.Context) error {
	overdue, err := s.overdueDeliveriesHandler.Handle(ctx.Request().Context(), queries.NewGetOverdueDeliveriesQuery())
	if err != nil {
		return fail(ctx, err)
	}

	resp := make([]OverdueDeliveryResponse, 0, len(overdue))
	for _, delivery := range overdue {
		var agentID *string
		if delivery.DeliveryAgentID != nil {
			id := delivery.DeliveryAgentID.String()
			agentID = &id
		}
		resp = append(resp, OverdueDeliveryResponse{
			OrderID:               delivery.OrderID.String(),
			Number:                delivery.Number,
			CustomerID:            delivery.CustomerID.String(),
			DeliveryAgentID:       agentID,
			EstimatedDeliveryTime: delivery.EstimatedDeliveryTime,
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

// AgentEarnings handles GET /api/v1/agents/:id/earnings - a delivery agent's
// earnings ledger.
func (s *Server) AgentEarnings(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetAgentEarningsQuery(agentID)
	if err != nil {
		return fail(ctx, err)
	}

	earnings, err := s.agentEarningsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, EarningsResponse{
		AgentID:             earnings.AgentID.String(),
		TotalEarnings:       earnings.TotalEarnings,
		DeliveriesCompleted: earnings.DeliveriesCompleted,
	})
}

// GetCart handles GET /api/v1/customers/:id/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cart, err := s.cartStore.Get(ctx.Request().Context(), customerID)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cart)
}

// PutCart handles PUT /api/v1/customers/:id/cart - replaces the customer's cart.
func (s *Server) PutCart(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CartRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cart := ports.Cart{Items: make([]ports.CartItem, 0, len(req.Items))}
	for _, item := range req.Items {
		cart.Items = append(cart.Items, ports.CartItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	if err = s.cartStore.Put(ctx.Request().Context(), customerID, cart); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// actorID extracts the acting principal's identifier from the request headers.
func actorID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
}

// badRequest returns a 400 with the parse error's message.
func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}
