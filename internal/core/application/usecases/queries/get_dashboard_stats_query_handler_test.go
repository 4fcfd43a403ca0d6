package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/routerepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/route"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDashboardStatsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetDashboardStatsQueryHandler
}

func (suite *GetDashboardStatsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&driverrepo.DriverDTO{},
		&routerepo.RouteDTO{},
		&assignmentrepo.AssignmentDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetDashboardStatsQueryHandler(db)
}

func (suite *GetDashboardStatsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetDashboardStatsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, drivers, routes, assignments RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

func (suite *GetDashboardStatsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsZeroes() {
	query := queries.NewGetDashboardStatsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(queries.GetDashboardStatsQueryResponse{}, result)
}

func (suite *GetDashboardStatsQueryHandlerTestSuite) TestHandle_MixedData_ComputesSummary() {
	ctx := context.Background()

	seededRoute, err := seedRoute(ctx, suite.db, 15, route.TrafficHigh)
	suite.Require().NoError(err)

	routeID := seededRoute.ID()
	routedOrder, err := seedOrder(ctx, suite.db, 500, 45, &routeID)
	suite.Require().NoError(err)
	_, err = seedOrder(ctx, suite.db, 300, 30, nil)
	suite.Require().NoError(err)
	_, err = seedOrder(ctx, suite.db, 200, 60, nil)
	suite.Require().NoError(err)

	driver1, err := seedDriver(ctx, suite.db, "Ravi Kumar", 8, []float64{8, 8, 8, 8, 8, 0, 0})
	suite.Require().NoError(err)
	_, err = seedDriver(ctx, suite.db, "Anita Desai", 6, []float64{5, 5, 5, 5, 5, 5, 5})
	suite.Require().NoError(err)

	_, err = seedAssignment(ctx, suite.db, routedOrder.ID(), driver1.ID(), 48)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, queries.NewGetDashboardStatsQuery())

	suite.Require().NoError(err)
	suite.Equal(3, result.TotalOrders)
	suite.Equal(2, result.PendingAssignments)
	// The routed order contributes its adjusted estimate (48), the plain
	// orders their own delivery times: (48+30+60)/3 = 46.
	suite.Equal(46.0, result.AverageDeliveryTime)
	suite.Equal(33, result.AssignmentRate)
	suite.Equal(1, result.TotalAssignments)
	suite.Equal(2, result.TotalDrivers)
	// Past-week totals are 40 and 35 hours; the mean is 37.5.
	suite.Equal(37.5, result.AverageDriverWorkload)
}

func (suite *GetDashboardStatsQueryHandlerTestSuite) TestHandle_SoftDeletedRows_AreExcluded() {
	ctx := context.Background()

	activeOrder, err := seedOrder(ctx, suite.db, 100, 40, nil)
	suite.Require().NoError(err)
	_, err = seedOrder(ctx, suite.db, 100, 99, nil)
	suite.Require().NoError(err)
	seededDriver, err := seedDriver(ctx, suite.db, "Suresh Patel", 8, nil)
	suite.Require().NoError(err)
	_, err = seedAssignment(ctx, suite.db, activeOrder.ID(), seededDriver.ID(), 40)
	suite.Require().NoError(err)

	err = suite.db.Exec("UPDATE orders SET deleted = true WHERE id <> ?", activeOrder.ID().Int64()).Error
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, queries.NewGetDashboardStatsQuery())

	suite.Require().NoError(err)
	suite.Equal(1, result.TotalOrders)
	suite.Equal(0, result.PendingAssignments)
	suite.Equal(40.0, result.AverageDeliveryTime)
	suite.Equal(100, result.AssignmentRate)
}

func (suite *GetDashboardStatsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetDashboardStatsQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetDashboardStatsQuery constructor")
}

func TestGetDashboardStatsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDashboardStatsQueryHandlerTestSuite))
}
