package cmd

import (
	"log/slog"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/outboxrepo"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"gorm.io/gorm"
)

const outboxRelayBatchSize = 100

type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	uowFactory  *postgres.GormUnitOfWorkFactory
	catalog     ports.ProductCatalog
	publisher   ports.EventPublisher
	deliveryFee kernel.Money
	logger      *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	catalog ports.ProductCatalog,
	publisher ports.EventPublisher,
	deliveryFee kernel.Money,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:     catalog,
		publisher:   publisher,
		deliveryFee: deliveryFee,
		logger:      logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.catalog, c.deliveryFee, nil)
}

func (c *CompositionRoot) CreateSubmitDeliveryRequestCommandHandler() commands.SubmitDeliveryRequestCommandHandler {
	return commands.NewSubmitDeliveryRequestCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateAcceptDeliveryRequestCommandHandler() commands.AcceptDeliveryRequestCommandHandler {
	return commands.NewAcceptDeliveryRequestCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateRejectDeliveryRequestCommandHandler() commands.RejectDeliveryRequestCommandHandler {
	return commands.NewRejectDeliveryRequestCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpsertDeliveryPersonCommandHandler() commands.UpsertDeliveryPersonCommandHandler {
	var f commands.DeliveryPersonUoWFactory = FuncDeliveryPersonUoWFactory(func() commands.DeliveryPersonUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpsertDeliveryPersonCommandHandler(f)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	return commands.NewRelayOutboxCommandHandler(outboxrepo.NewGormOutboxRepository(c.gormDB), c.publisher)
}

// Query handlers read outside any transaction, so the repositories come from
// a unit of work that is never begun.
func (c *CompositionRoot) orderReader() queries.OrderReader {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateListAllOrdersQueryHandler() queries.ListAllOrdersQueryHandler {
	return queries.NewListAllOrdersQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateListAvailableOrdersQueryHandler() queries.ListAvailableOrdersQueryHandler {
	return queries.NewListAvailableOrdersQueryHandler(
		c.orderReader(),
		c.uowFactory.Create().DeliveryPersonRepository(),
	)
}

func (c *CompositionRoot) CreateListPendingDeliveryRequestsQueryHandler() queries.ListPendingDeliveryRequestsQueryHandler {
	return queries.NewListPendingDeliveryRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		SubmitDeliveryRequest: c.CreateSubmitDeliveryRequestCommandHandler(),
		AcceptDeliveryRequest: c.CreateAcceptDeliveryRequestCommandHandler(),
		RejectDeliveryRequest: c.CreateRejectDeliveryRequestCommandHandler(),
		AdvanceOrderStatus:    c.CreateAdvanceOrderStatusCommandHandler(),
		CancelOrder:           c.CreateCancelOrderCommandHandler(),
		UpsertDeliveryPerson:  c.CreateUpsertDeliveryPersonCommandHandler(),

		GetOrder:                    c.CreateGetOrderQueryHandler(),
		ListOrders:                  c.CreateListOrdersQueryHandler(),
		ListAvailableOrders:         c.CreateListAvailableOrdersQueryHandler(),
		ListPendingDeliveryRequests: c.CreateListPendingDeliveryRequestsQueryHandler(),
		ListAllOrders:               c.CreateListAllOrdersQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	relay := jobs.NewOutboxRelayJob(
		c.CreateRelayOutboxCommandHandler(),
		c.config.OutboxRelaySchedule,
		outboxRelayBatchSize,
		c.logger,
	)
	return jobs.NewJobManager(relay)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryPersonUoWFactory func() commands.DeliveryPersonUoW

func (f FuncDeliveryPersonUoWFactory) Create() commands.DeliveryPersonUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
