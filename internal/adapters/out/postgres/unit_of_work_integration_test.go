package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/outboxrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/deliveryperson"
	"marketplace/internal/core/domain/model/deliveryrequest"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// UnitOfWorkIntegrationTestSuite exercises transactions, the outbox and the
// assignment workflow end to end against PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	factory *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(pg.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "a second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().Error(uow.Commit(ctx), "commit without a transaction")
	suite.Require().Error(uow.Rollback(ctx), "rollback without a transaction")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WritesEventsToOutbox() {
	ctx := context.Background()
	o := suite.newOrder(kernel.NewUUID())
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(o.Assign(kernel.NewUUID(), time.Now()))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Empty(o.DomainEvents(), "events are drained after commit")

	messages := suite.outbox()
	suite.Require().Len(messages, 2)
	suite.Equal(order.EventOrderCreated, messages[0].EventName)
	suite.Equal(order.EventOrderAssigned, messages[1].EventName)
	suite.True(messages[0].AggregateID.IsEqual(o.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsStateAndEvents() {
	ctx := context.Background()
	o := suite.newOrder(kernel.NewUUID())
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	_, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err, "visible inside the transaction")
	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Empty(suite.outbox())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestIsolationBetweenInstances() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	order1 := suite.newOrder(kernel.NewUUID())
	order2 := suite.newOrder(kernel.NewUUID())

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))
	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "uow1 must not see order2")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	reader := suite.factory.Create().OrderRepository()
	_, err = reader.Get(ctx, order1.ID())
	suite.Require().NoError(err)
	_, err = reader.Get(ctx, order2.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAssignmentWorkflow_EndToEnd() {
	ctx := context.Background()
	shop := kernel.NewUUID()
	customer := kernel.NewUUID()
	kettle := suite.product(shop, "kettle", 500)
	toaster := suite.product(shop, "toaster", 300)
	dp := suite.registerDeliveryPerson("Jaipur")

	address, err := kernel.NewAddress(kernel.AddressFields{FullName: "Asha Verma", City: "Jaipur"})
	suite.Require().NoError(err)
	createCmd, err := commands.NewCreateOrderCommand(customer, []order.ItemRequest{
		{ProductID: kettle.ID, Quantity: 2},
		{ProductID: toaster.ID, Quantity: 1},
	}, address)
	suite.Require().NoError(err)

	created, err := commands.NewCreateOrderCommandHandler(suite.orderUoWs(), stubCatalog{kettle, toaster},
		suite.money(10), nil).Handle(ctx, createCmd)
	suite.Require().NoError(err)
	suite.True(created.TotalAmount().IsEqual(suite.money(1310)))
	suite.Equal(order.Processing, created.Status())

	submitCmd, _ := commands.NewSubmitDeliveryRequestCommand(created.ID(), dp.ID())
	_, err = commands.NewSubmitDeliveryRequestCommandHandler(suite.uows()).Handle(ctx, submitCmd)
	suite.Require().NoError(err)

	acceptCmd, _ := commands.NewAcceptDeliveryRequestCommand(created.ID(), dp.ID(), shop)
	accepted, err := commands.NewAcceptDeliveryRequestCommandHandler(suite.uows()).Handle(ctx, acceptCmd)
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, accepted.Status())

	for _, next := range []string{"Shifted", "OutForDelivery", "Delivered"} {
		advanceCmd, _ := commands.NewAdvanceOrderStatusCommand(created.ID(), dp.ID(), next)
		_, err = commands.NewAdvanceOrderStatusCommandHandler(suite.orderUoWs()).Handle(ctx, advanceCmd)
		suite.Require().NoError(err, next)
	}

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, stored.Status())
	suite.True(stored.IsAssignedTo(dp.ID()))

	names := make([]string, 0)
	for _, m := range suite.outbox() {
		names = append(names, m.EventName)
	}
	suite.Equal([]string{
		order.EventOrderCreated,
		"delivery_request.submitted",
		"delivery_request.accepted",
		order.EventOrderAssigned,
		order.EventOrderStatusChanged,
		order.EventOrderStatusChanged,
		order.EventOrderStatusChanged,
	}, names)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRejectThenResubmit_ReusesRequestRow() {
	ctx := context.Background()
	shop := kernel.NewUUID()
	o := suite.newOrder(shop)
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))
	first := suite.registerDeliveryPerson("Jaipur")
	second := suite.registerDeliveryPerson("Jaipur")
	submit := commands.NewSubmitDeliveryRequestCommandHandler(suite.uows())

	firstCmd, _ := commands.NewSubmitDeliveryRequestCommand(o.ID(), first.ID())
	claimed, err := submit.Handle(ctx, firstCmd)
	suite.Require().NoError(err)
	requestID := claimed.ID()

	secondCmd, _ := commands.NewSubmitDeliveryRequestCommand(o.ID(), second.ID())
	_, err = submit.Handle(ctx, secondCmd)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	rejectCmd, _ := commands.NewRejectDeliveryRequestCommand(o.ID(), first.ID(), shop)
	rejected, err := commands.NewRejectDeliveryRequestCommandHandler(suite.uows()).Handle(ctx, rejectCmd)
	suite.Require().NoError(err)
	suite.Equal(deliveryrequest.Rejected, rejected.Status())

	orders := suite.factory.Create().OrderRepository()
	stored, err := orders.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, stored.Status())
	suite.Nil(stored.DeliveryPersonID())
	available, err := orders.ListUnassignedByCity(ctx, "jaipur")
	suite.Require().NoError(err)
	suite.Require().Len(available, 1)
	suite.True(available[0].ID().IsEqual(o.ID()))

	resubmitted, err := submit.Handle(ctx, secondCmd)
	suite.Require().NoError(err)
	suite.True(resubmitted.ID().IsEqual(requestID))

	row, err := suite.factory.Create().DeliveryRequestRepository().GetByOrderID(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(row.ID().IsEqual(requestID), "the request row is reused")
	suite.True(row.DeliveryPersonID().IsEqual(second.ID()))
	suite.Equal(deliveryrequest.Pending, row.Status())
	suite.Equal(2, row.Version())

	var rows int64
	suite.Require().NoError(suite.pg.DB.Table("delivery_requests").Where("order_id = ?", o.ID().Bytes()).Count(&rows).Error)
	suite.Equal(int64(1), rows)

	names := make([]string, 0)
	for _, m := range suite.outbox() {
		names = append(names, m.EventName)
		suite.True(m.AggregateID.IsEqual(requestID))
		suite.True(m.PartitionKey.IsEqual(o.ID()), "request events share the order's partition")
	}
	suite.Equal([]string{
		deliveryrequest.EventRequestSubmitted,
		deliveryrequest.EventRequestRejected,
		deliveryrequest.EventRequestSubmitted,
	}, names)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentSubmit_FirstClaimWins() {
	ctx := context.Background()
	o := suite.newOrder(kernel.NewUUID())
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	const candidates = 5
	people := make([]*deliveryperson.DeliveryPerson, 0, candidates)
	for k := 0; k < candidates; k++ {
		people = append(people, suite.registerDeliveryPerson("Jaipur"))
	}

	handler := commands.NewSubmitDeliveryRequestCommandHandler(suite.uows())
	results := make([]error, candidates)
	var wg sync.WaitGroup
	for i, p := range people {
		i, p := i, p
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, _ := commands.NewSubmitDeliveryRequestCommand(o.ID(), p.ID())
			_, results[i] = handler.Handle(ctx, cmd)
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		suite.Equal(errs.KindConflict, errs.KindOf(err), err.Error())
	}
	suite.Equal(1, succeeded)

	r, err := suite.factory.Create().DeliveryRequestRepository().GetByOrderID(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(0, r.Version())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentAccept_AssignsOnce() {
	ctx := context.Background()
	shop := kernel.NewUUID()
	o := suite.newOrder(shop)
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))
	dp := suite.registerDeliveryPerson("Jaipur")

	submitCmd, _ := commands.NewSubmitDeliveryRequestCommand(o.ID(), dp.ID())
	_, err := commands.NewSubmitDeliveryRequestCommandHandler(suite.uows()).Handle(ctx, submitCmd)
	suite.Require().NoError(err)

	handler := commands.NewAcceptDeliveryRequestCommandHandler(suite.uows())
	results := make([]error, 2)
	var wg sync.WaitGroup
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, _ := commands.NewAcceptDeliveryRequestCommand(o.ID(), dp.ID(), shop)
			_, results[i] = handler.Handle(ctx, cmd)
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		suite.True(errs.IsRecoverable(err) || errs.KindOf(err) == errs.KindNotFound, err.Error())
	}
	suite.Equal(1, succeeded)

	assigned := 0
	for _, m := range suite.outbox() {
		if m.EventName == order.EventOrderAssigned {
			assigned++
		}
	}
	suite.Equal(1, assigned)
}

func (suite *UnitOfWorkIntegrationTestSuite) uows() commands.UoWFactory {
	return uowFactory(func() commands.UoW { return suite.factory.Create() })
}

func (suite *UnitOfWorkIntegrationTestSuite) orderUoWs() commands.OrderUoWFactory {
	return orderUoWFactory(func() commands.OrderUoW { return suite.factory.Create() })
}

func (suite *UnitOfWorkIntegrationTestSuite) outbox() []ports.OutboxMessage {
	messages, err := outboxrepo.NewGormOutboxRepository(suite.pg.DB).GetUnpublished(context.Background(), 100)
	suite.Require().NoError(err)
	return messages
}

func (suite *UnitOfWorkIntegrationTestSuite) money(amount int64) kernel.Money {
	m, err := kernel.NewMoneyFromInt(amount)
	suite.Require().NoError(err)
	return m
}

func (suite *UnitOfWorkIntegrationTestSuite) product(shop kernel.UUID, title string, price int64) order.Product {
	return order.Product{ID: kernel.NewUUID(), SellerID: shop, Title: title, Price: suite.money(price)}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(shop kernel.UUID) *order.Order {
	p := suite.product(shop, "kettle", 500)
	items, err := order.BuildLineItems([]order.ItemRequest{{ProductID: p.ID, Quantity: 1}}, []order.Product{p})
	suite.Require().NoError(err)
	address, err := kernel.NewAddress(kernel.AddressFields{City: "Jaipur"})
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, address, suite.money(10), time.Now())
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) registerDeliveryPerson(city string) *deliveryperson.DeliveryPerson {
	dp, err := deliveryperson.NewDeliveryPerson(kernel.NewUUID(), "Ravi", "9876543210", city, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().DeliveryPersonRepository().Add(context.Background(), dp))
	return dp
}

type uowFactory func() commands.UoW

func (f uowFactory) Create() commands.UoW { return f() }

type orderUoWFactory func() commands.OrderUoW

func (f orderUoWFactory) Create() commands.OrderUoW { return f() }

type stubCatalog []order.Product

func (c stubCatalog) ResolveProducts(_ context.Context, ids []kernel.UUID) ([]order.Product, error) {
	found := make([]order.Product, 0, len(ids))
	for _, id := range ids {
		for _, p := range c {
			if p.ID.IsEqual(id) {
				found = append(found, p)
			}
		}
	}
	return found, nil
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
