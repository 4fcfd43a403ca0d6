package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	postgres_adapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/routerepo"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based Unit of Work
// against a real PostgreSQL database, including the serializable isolation
// behavior the assignment paths rely on.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection
// for all tests, and migrates the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// DriverName pins the lib/pq driver so SQLSTATE classification sees
	// *pq.Error, same as the production wiring.
	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{
		DriverName: "postgres",
		DSN:        dsn,
	}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&driverrepo.DriverDTO{},
		&routerepo.RouteDTO{},
		&assignmentrepo.AssignmentDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, drivers, routes, assignments RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory creates independent
// instances that each expose all four repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.DriverRepository())
	suite.NotNil(uow1.RouteRepository())
	suite.NotNil(uow1.AssignmentRepository())
	suite.NotNil(uow2.OrderRepository())
	suite.NotNil(uow2.AssignmentRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, repeated begin,
// commit, and rollback behave as documented.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Repeated begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies commit and rollback fail
// without an active transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies an aggregate added
// within a transaction is visible inside it and persists after commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	created, err := uow.OrderRepository().Add(ctx, suite.makeOrder(120))
	suite.Require().NoError(err)
	suite.Positive(created.ID().Int64(), "Add should return the persisted identity")

	retrieved, err := uow.OrderRepository().Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(created.ID(), retrieved.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.OrderRepository().Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(created.DeliveryTimeMin(), retrieved.DeliveryTimeMin())
}

// TestUnitOfWork_AssignmentWorkflow runs the full manual assignment write
// path across all four repositories within one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AssignmentWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testRoute, err := route.NewRoute(15, route.TrafficHigh, route.BaseTimeForDistance(15))
	suite.Require().NoError(err)
	createdRoute, err := uow.RouteRepository().Add(ctx, testRoute)
	suite.Require().NoError(err)

	routeID := createdRoute.ID()
	testOrder, err := order.NewOrder(500, 45, &routeID)
	suite.Require().NoError(err)
	createdOrder, err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	createdDriver, err := uow.DriverRepository().Add(ctx, suite.makeDriver("Ravi Kumar", 8))
	suite.Require().NoError(err)

	testAssignment, err := assignment.NewAssignment(
		createdOrder.ID(), createdDriver.ID(), 72, time.Now().UTC())
	suite.Require().NoError(err)
	createdAssignment, err := uow.AssignmentRepository().Add(ctx, testAssignment)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify the whole graph persisted.
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, createdOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrievedOrder.RouteID())
	suite.Equal(createdRoute.ID(), *retrievedOrder.RouteID())

	retrievedAssignment, err := newUow.AssignmentRepository().GetByOrder(ctx, createdOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(createdAssignment.ID(), retrievedAssignment.ID())
	suite.Equal(createdDriver.ID(), retrievedAssignment.DriverID())
	suite.Equal(72, retrievedAssignment.EstimatedTimeMin())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards changes
// across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	createdOrder, err := uow.OrderRepository().Add(ctx, suite.makeOrder(30))
	suite.Require().NoError(err)

	createdDriver, err := uow.DriverRepository().Add(ctx, suite.makeDriver("Anita Desai", 6))
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().Get(ctx, createdOrder.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, createdOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
	suite.True(errors.Is(err, errs.ErrObjectNotFound))

	_, err = newUow.DriverRepository().Get(ctx, createdDriver.ID())
	suite.Require().Error(err, "Driver should not exist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies repositories obtained before
// Begin run against the base connection and auto-commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	created, err := uow.OrderRepository().Add(ctx, suite.makeOrder(60))
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.OrderRepository().Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(created.ID(), retrieved.ID())
}

// TestUnitOfWork_SerializableConflict verifies two transactions that both
// read the active assignment set and then write to it cannot both commit.
// This is the race the capacity check depends on: without it two checks
// could both pass and overfill a driver.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SerializableConflict() {
	ctx := context.Background()

	setupUow := suite.factory.Create()
	createdOrder1, err := setupUow.OrderRepository().Add(ctx, suite.makeOrder(200))
	suite.Require().NoError(err)
	createdOrder2, err := setupUow.OrderRepository().Add(ctx, suite.makeOrder(200))
	suite.Require().NoError(err)
	createdDriver, err := setupUow.DriverRepository().Add(ctx, suite.makeDriver("Suresh Patel", 8))
	suite.Require().NoError(err)

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	// Both transactions observe an empty active set, so both capacity
	// checks pass locally.
	active1, err := uow1.AssignmentRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Empty(active1)

	active2, err := uow2.AssignmentRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Empty(active2)

	assignment1, err := assignment.NewAssignment(
		createdOrder1.ID(), createdDriver.ID(), 200, time.Now().UTC())
	suite.Require().NoError(err)
	_, err = uow1.AssignmentRepository().Add(ctx, assignment1)
	suite.Require().NoError(err)

	assignment2, err := assignment.NewAssignment(
		createdOrder2.ID(), createdDriver.ID(), 200, time.Now().UTC())
	suite.Require().NoError(err)
	_, err = uow2.AssignmentRepository().Add(ctx, assignment2)
	suite.Require().NoError(err)

	err = uow1.Commit(ctx)
	suite.Require().NoError(err, "First commit should succeed")

	err = uow2.Commit(ctx)
	suite.Require().Error(err, "Second commit must fail under serializable isolation")
	suite.True(errors.Is(err, errs.ErrConcurrencyConflict),
		"Serialization failure should surface as a concurrency conflict")

	// Exactly one assignment survived.
	finalUow := suite.factory.Create()
	all, err := finalUow.AssignmentRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 1)
	suite.Equal(createdOrder1.ID(), all[0].OrderID())
}

// TestUnitOfWork_SoftDeleteVisibility verifies soft-deleted assignments
// disappear from reads and orders surface as unassigned again.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SoftDeleteVisibility() {
	ctx := context.Background()
	uow := suite.factory.Create()

	createdOrder, err := uow.OrderRepository().Add(ctx, suite.makeOrder(40))
	suite.Require().NoError(err)
	createdDriver, err := uow.DriverRepository().Add(ctx, suite.makeDriver("Meena Iyer", 8))
	suite.Require().NoError(err)

	testAssignment, err := assignment.NewAssignment(
		createdOrder.ID(), createdDriver.ID(), 40, time.Now().UTC())
	suite.Require().NoError(err)
	_, err = uow.AssignmentRepository().Add(ctx, testAssignment)
	suite.Require().NoError(err)

	unassigned, err := uow.OrderRepository().GetAllUnassigned(ctx)
	suite.Require().NoError(err)
	suite.Empty(unassigned, "Assigned order should not surface as unassigned")

	result := suite.db.Exec(
		"UPDATE assignments SET deleted = true WHERE order_id = ?", createdOrder.ID().Int64())
	suite.Require().NoError(result.Error)
	suite.Equal(int64(1), result.RowsAffected)

	_, err = uow.AssignmentRepository().GetByOrder(ctx, createdOrder.ID())
	suite.Require().Error(err)
	suite.True(errors.Is(err, errs.ErrObjectNotFound))

	unassigned, err = uow.OrderRepository().GetAllUnassigned(ctx)
	suite.Require().NoError(err)
	suite.Len(unassigned, 1)
	suite.Equal(createdOrder.ID(), unassigned[0].ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) makeOrder(deliveryTimeMin int) *order.Order {
	testOrder, err := order.NewOrder(500, deliveryTimeMin, nil)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) makeDriver(name string, shiftHours float64) *driver.Driver {
	testDriver, err := driver.NewDriver(name, shiftHours, driver.WeekHours{})
	suite.Require().NoError(err)
	return testDriver
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
