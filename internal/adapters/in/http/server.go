// Package http exposes the application's use cases over a JSON REST API.
// Courier-facing routes live under /api/v1/couriers/me and resolve the acting
// courier from the X-Account-ID header set by the authenticating proxy.
package http

import (
	"net/http"
	"time"

	"mealdrop/internal/core/application/usecases/commands"
	"mealdrop/internal/core/application/usecases/queries"
	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/core/domain/model/order"
	"mealdrop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const accountHeader = "X-Account-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCourierHandler   commands.CreateCourierCommandHandler
	startShiftHandler      commands.StartShiftCommandHandler
	stopShiftHandler       commands.StopShiftCommandHandler
	updateLocationHandler  commands.UpdateCourierLocationCommandHandler
	checkoutBasketHandler  commands.CheckoutBasketCommandHandler
	dispatchOrderHandler   commands.DispatchOrderCommandHandler
	assignOrderHandler     commands.AssignOrderCommandHandler
	acceptRequestHandler   commands.AcceptDeliveryRequestCommandHandler
	rejectRequestHandler   commands.RejectDeliveryRequestCommandHandler
	confirmPickupHandler   commands.ConfirmPickupCommandHandler
	confirmDropoffHandler  commands.ConfirmDropoffCommandHandler
	startPreparingHandler  commands.StartPreparingCommandHandler
	finishPreparingHandler commands.FinishPreparingCommandHandler

	// Query handlers
	getAllCouriersHandler     queries.GetAllCouriersQueryHandler
	getCourierByAccount       queries.GetCourierByAccountQueryHandler
	getCourierActiveOrders    queries.GetCourierActiveOrdersQueryHandler
	getCourierPendingRequests queries.GetCourierPendingRequestsQueryHandler
}

// Handlers bundles everything a Server needs. Kept as a struct so the
// composition root reads as an inventory rather than a positional list.
type Handlers struct {
	CreateCourier   commands.CreateCourierCommandHandler
	StartShift      commands.StartShiftCommandHandler
	StopShift       commands.StopShiftCommandHandler
	UpdateLocation  commands.UpdateCourierLocationCommandHandler
	CheckoutBasket  commands.CheckoutBasketCommandHandler
	DispatchOrder   commands.DispatchOrderCommandHandler
	AssignOrder     commands.AssignOrderCommandHandler
	AcceptRequest   commands.AcceptDeliveryRequestCommandHandler
	RejectRequest   commands.RejectDeliveryRequestCommandHandler
	ConfirmPickup   commands.ConfirmPickupCommandHandler
	ConfirmDropoff  commands.ConfirmDropoffCommandHandler
	StartPreparing  commands.StartPreparingCommandHandler
	FinishPreparing commands.FinishPreparingCommandHandler

	GetAllCouriers            queries.GetAllCouriersQueryHandler
	GetCourierByAccount       queries.GetCourierByAccountQueryHandler
	GetCourierActiveOrders    queries.GetCourierActiveOrdersQueryHandler
	GetCourierPendingRequests queries.GetCourierPendingRequestsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{
		createCourierHandler:      handlers.CreateCourier,
		startShiftHandler:         handlers.StartShift,
		stopShiftHandler:          handlers.StopShift,
		updateLocationHandler:     handlers.UpdateLocation,
		checkoutBasketHandler:     handlers.CheckoutBasket,
		dispatchOrderHandler:      handlers.DispatchOrder,
		assignOrderHandler:        handlers.AssignOrder,
		acceptRequestHandler:      handlers.AcceptRequest,
		rejectRequestHandler:      handlers.RejectRequest,
		confirmPickupHandler:      handlers.ConfirmPickup,
		confirmDropoffHandler:     handlers.ConfirmDropoff,
		startPreparingHandler:     handlers.StartPreparing,
		finishPreparingHandler:    handlers.FinishPreparing,
		getAllCouriersHandler:     handlers.GetAllCouriers,
		getCourierByAccount:       handlers.GetCourierByAccount,
		getCourierActiveOrders:    handlers.GetCourierActiveOrders,
		getCourierPendingRequests: handlers.GetCourierPendingRequests,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/couriers", s.CreateCourier)
	api.GET("/couriers", s.GetCouriers)

	me := api.Group("/couriers/me")
	me.GET("", s.GetMyProfile)
	me.POST("/shift/start", s.StartMyShift)
	me.POST("/shift/stop", s.StopMyShift)
	me.POST("/location", s.ReportMyLocation)
	me.GET("/orders", s.GetMyActiveOrders)
	me.GET("/requests", s.GetMyPendingRequests)
	me.POST("/requests/:order_id/accept", s.AcceptRequest)
	me.POST("/requests/:order_id/reject", s.RejectRequest)
	me.POST("/orders/:order_id/pickup", s.ConfirmPickup)
	me.POST("/orders/:order_id/dropoff", s.ConfirmDropoff)

	api.POST("/orders", s.Checkout)
	api.POST("/orders/:order_id/dispatch", s.DispatchOrder)
	api.POST("/orders/:order_id/assign", s.AssignOrder)
	api.POST("/orders/:order_id/preparation/start", s.StartPreparing)
	api.POST("/orders/:order_id/preparation/finish", s.FinishPreparing)
}

// CreateCourier handles POST /api/v1/couriers - registers a new courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req CreateCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	accountID, err := parseUUID("accountId", req.AccountID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateCourierCommand(accountID, req.FullName)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CourierCreatedResponse{ID: cmd.CourierID()})
}

// GetCouriers handles GET /api/v1/couriers - retrieves all couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	couriers, err := s.getAllCouriersHandler.Handle(ctx.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, couriers)
}

// GetMyProfile handles GET /api/v1/couriers/me - the acting courier's record.
func (s *Server) GetMyProfile(ctx echo.Context) error {
	accountID, err := accountFromHeader(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCourierByAccountQuery(accountID)
	if err != nil {
		return respondError(ctx, err)
	}

	profile, err := s.getCourierByAccount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, profile)
}

// StartMyShift handles POST /api/v1/couriers/me/shift/start.
func (s *Server) StartMyShift(ctx echo.Context) error {
	courierID, err := s.resolveCourierID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStartShiftCommand(courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.startShiftHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StopMyShift handles POST /api/v1/couriers/me/shift/stop.
func (s *Server) StopMyShift(ctx echo.Context) error {
	courierID, err := s.resolveCourierID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStopShiftCommand(courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.stopShiftHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReportMyLocation handles POST /api/v1/couriers/me/location.
func (s *Server) ReportMyLocation(ctx echo.Context) error {
	courierID, err := s.resolveCourierID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req ReportLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	position, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return respondError(ctx, err)
	}

	observedAt := time.Now().UTC()
	if req.ObservedAt != nil {
		observedAt = *req.ObservedAt
	}

	report, err := kernel.NewLocationReport(position, observedAt)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateCourierLocationCommand(courierID, report)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMyActiveOrders handles GET /api/v1/couriers/me/orders.
func (s *Server) GetMyActiveOrders(ctx echo.Context) error {
	courierID, err := s.resolveCourierID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCourierActiveOrdersQuery(courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getCourierActiveOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetMyPendingRequests handles GET /api/v1/couriers/me/requests.
func (s *Server) GetMyPendingRequests(ctx echo.Context) error {
	courierID, err := s.resolveCourierID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCourierPendingRequestsQuery(courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	pending, err := s.getCourierPendingRequests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pending)
}

// AcceptRequest handles POST /api/v1/couriers/me/requests/:order_id/accept.
func (s *Server) AcceptRequest(ctx echo.Context) error {
	courierID, err := s.resolveCourierID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptDeliveryRequestCommand(orderID, courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.acceptRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectRequest handles POST /api/v1/couriers/me/requests/:order_id/reject.
func (s *Server) RejectRequest(ctx echo.Context) error {
	courierID, err := s.resolveCourierID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRejectDeliveryRequestCommand(orderID, courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.rejectRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPickup handles POST /api/v1/couriers/me/orders/:order_id/pickup.
func (s *Server) ConfirmPickup(ctx echo.Context) error {
	courierID, err := s.resolveCourierID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewConfirmPickupCommand(orderID, courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.confirmPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDropoff handles POST /api/v1/couriers/me/orders/:order_id/dropoff.
func (s *Server) ConfirmDropoff(ctx echo.Context) error {
	courierID, err := s.resolveCourierID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewConfirmDropoffCommand(orderID, courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.confirmDropoffHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/orders - places an order from a basket.
func (s *Server) Checkout(ctx echo.Context) error {
	var req CheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	customerID, err := parseUUID("customerId", req.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}

	restaurantID, err := parseUUID("restaurantId", req.RestaurantID)
	if err != nil {
		return respondError(ctx, err)
	}

	lines := make([]order.Item, 0, len(req.Items))
	for _, line := range req.Items {
		dishID, lineErr := parseUUID("dishId", line.DishID)
		if lineErr != nil {
			return respondError(ctx, lineErr)
		}

		item, lineErr := order.NewItem(dishID, line.DishName, line.Quantity, line.UnitPrice)
		if lineErr != nil {
			return respondError(ctx, lineErr)
		}
		lines = append(lines, item)
	}

	cmd, err := commands.NewCheckoutBasketCommand(customerID, restaurantID, req.DeliveryAddress, lines)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := s.checkoutBasketHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderPlacedResponse{ID: orderID})
}

// DispatchOrder handles POST /api/v1/orders/:order_id/dispatch - picks the
// least loaded on-shift courier and offers the order to them.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDispatchOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.dispatchOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignOrder handles POST /api/v1/orders/:order_id/assign - offers an order
// to a courier.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req AssignOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	courierID, err := parseUUID("courierId", req.CourierID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartPreparing handles POST /api/v1/orders/:order_id/preparation/start.
func (s *Server) StartPreparing(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStartPreparingCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.startPreparingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinishPreparing handles POST /api/v1/orders/:order_id/preparation/finish.
func (s *Server) FinishPreparing(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewFinishPreparingCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.finishPreparingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// resolveCourierID maps the account header to the acting courier's identity.
func (s *Server) resolveCourierID(ctx echo.Context) (kernel.UUID, error) {
	accountID, err := accountFromHeader(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}

	query, err := queries.NewGetCourierByAccountQuery(accountID)
	if err != nil {
		return kernel.UUID{}, err
	}

	profile, err := s.getCourierByAccount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return kernel.UUID{}, err
	}

	return profile.ID, nil
}

func accountFromHeader(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(accountHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(accountHeader)
	}

	return parseUUID(accountHeader, raw)
}

func orderIDFromPath(ctx echo.Context) (kernel.UUID, error) {
	return parseUUID("order_id", ctx.Param("order_id"))
}

// parseUUID classifies malformed identities as validation errors so they map
// to 400 rather than an internal fault.
func parseUUID(paramName string, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}
