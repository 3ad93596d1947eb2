package cmd

import (
	"log/slog"

	httpin "mealdrop/internal/adapters/in/http"
	"mealdrop/internal/adapters/in/ws"
	"mealdrop/internal/adapters/out/eventbus"
	"mealdrop/internal/adapters/out/postgres"
	"mealdrop/internal/core/application/usecases/commands"
	"mealdrop/internal/core/application/usecases/queries"
	"mealdrop/internal/jobs"
	"mealdrop/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. Handlers are built on demand;
// the bus, metrics and unit of work factory are shared.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory postgres.GormUnitOfWorkFactory
	meters     *metrics.Metrics
	bus        *eventbus.InMemoryBus
}

// NewCompositionRoot builds the object graph shared by the HTTP server, the
// WebSocket hub and the background jobs.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	meters := metrics.New(prometheus.DefaultRegisterer)
	bus := eventbus.NewInMemoryBus(logger, eventbus.WithPublishedCounter(meters.PublishedEvents))

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		meters:     meters,
		bus:        bus,
	}
}

// EventBus exposes the in-process bus for subscribers such as the hub.
func (c *CompositionRoot) EventBus() *eventbus.InMemoryBus {
	return c.bus
}

// NewWebSocketHub creates the hub subscribed to all publishable events.
func (c *CompositionRoot) NewWebSocketHub() *ws.Hub {
	return ws.NewHub(c.bus, c.logger)
}

// NewJobManager creates the background jobs wired to their handlers.
func (c *CompositionRoot) NewJobManager(hub *ws.Hub) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateTimeoutDeliveryRequestsCommandHandler(), hub, c.logger)
}

// NewHTTPServer creates the REST server with every handler attached.
func (c *CompositionRoot) NewHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateCourier:   c.CreateCreateCourierCommandHandler(),
		StartShift:      c.CreateStartShiftCommandHandler(),
		StopShift:       c.CreateStopShiftCommandHandler(),
		UpdateLocation:  c.CreateUpdateCourierLocationCommandHandler(),
		CheckoutBasket:  c.CreateCheckoutBasketCommandHandler(),
		DispatchOrder:   c.CreateDispatchOrderCommandHandler(),
		AssignOrder:     c.CreateAssignOrderCommandHandler(),
		AcceptRequest:   c.CreateAcceptDeliveryRequestCommandHandler(),
		RejectRequest:   c.CreateRejectDeliveryRequestCommandHandler(),
		ConfirmPickup:   c.CreateConfirmPickupCommandHandler(),
		ConfirmDropoff:  c.CreateConfirmDropoffCommandHandler(),
		StartPreparing:  c.CreateStartPreparingCommandHandler(),
		FinishPreparing: c.CreateFinishPreparingCommandHandler(),

		GetAllCouriers:            c.CreateGetAllCouriersQueryHandler(),
		GetCourierByAccount:       c.CreateGetCourierByAccountQueryHandler(),
		GetCourierActiveOrders:    c.CreateGetCourierActiveOrdersQueryHandler(),
		GetCourierPendingRequests: c.CreateGetCourierPendingRequestsQueryHandler(),
	})
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	return commands.NewCreateCourierCommandHandler(c.courierUoWFactory(), c.bus)
}

func (c *CompositionRoot) CreateStartShiftCommandHandler() commands.StartShiftCommandHandler {
	return commands.NewStartShiftCommandHandler(c.courierUoWFactory(), c.bus)
}

func (c *CompositionRoot) CreateStopShiftCommandHandler() commands.StopShiftCommandHandler {
	return commands.NewStopShiftCommandHandler(c.courierUoWFactory(), c.bus)
}

func (c *CompositionRoot) CreateUpdateCourierLocationCommandHandler() commands.UpdateCourierLocationCommandHandler {
	return commands.NewUpdateCourierLocationCommandHandler(c.courierUoWFactory(), c.bus)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.bus)
}

func (c *CompositionRoot) CreateCheckoutBasketCommandHandler() commands.CheckoutBasketCommandHandler {
	return commands.NewCheckoutBasketCommandHandler(c.CreatePlaceOrderCommandHandler(), c.config.MinimumOrderValue)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(c.dispatchUoWFactory(), nil)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.dispatchUoWFactory(), nil)
}

func (c *CompositionRoot) CreateAcceptDeliveryRequestCommandHandler() commands.AcceptDeliveryRequestCommandHandler {
	return commands.NewAcceptDeliveryRequestCommandHandler(c.dispatchUoWFactory(), c.bus)
}

func (c *CompositionRoot) CreateRejectDeliveryRequestCommandHandler() commands.RejectDeliveryRequestCommandHandler {
	return commands.NewRejectDeliveryRequestCommandHandler(c.dispatchUoWFactory(), c.meters.RejectRetries, c.logger)
}

func (c *CompositionRoot) CreateTimeoutDeliveryRequestsCommandHandler() commands.TimeoutDeliveryRequestsCommandHandler {
	return commands.NewTimeoutDeliveryRequestsCommandHandler(
		c.dispatchUoWFactory(), c.config.RequestTimeout, nil, c.logger)
}

func (c *CompositionRoot) CreateConfirmPickupCommandHandler() commands.ConfirmPickupCommandHandler {
	return commands.NewConfirmPickupCommandHandler(c.orderUoWFactory(), c.bus)
}

func (c *CompositionRoot) CreateConfirmDropoffCommandHandler() commands.ConfirmDropoffCommandHandler {
	return commands.NewConfirmDropoffCommandHandler(c.orderUoWFactory(), c.bus)
}

func (c *CompositionRoot) CreateStartPreparingCommandHandler() commands.StartPreparingCommandHandler {
	return commands.NewStartPreparingCommandHandler(c.orderUoWFactory(), c.bus)
}

func (c *CompositionRoot) CreateFinishPreparingCommandHandler() commands.FinishPreparingCommandHandler {
	return commands.NewFinishPreparingCommandHandler(c.orderUoWFactory(), c.bus)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierByAccountQueryHandler() queries.GetCourierByAccountQueryHandler {
	return queries.NewGetCourierByAccountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierActiveOrdersQueryHandler() queries.GetCourierActiveOrdersQueryHandler {
	return queries.NewGetCourierActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierPendingRequestsQueryHandler() queries.GetCourierPendingRequestsQueryHandler {
	return queries.NewGetCourierPendingRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
}

// FuncCourierUoWFactory adapts a closure to the CourierUoWFactory interface.
type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

// FuncOrderUoWFactory adapts a closure to the OrderUoWFactory interface.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncDispatchUoWFactory adapts a closure to the DispatchUoWFactory interface.
type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}
