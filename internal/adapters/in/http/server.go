// Package http exposes the assignment engine over an echo HTTP API.
// Handlers translate wire payloads into commands and queries and map
// application errors onto status codes; no business logic lives here.
package http

import (
	"net/http"
	"strconv"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Server wires the HTTP endpoints to the application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	createDriverHandler      commands.CreateDriverCommandHandler
	updateDriverHoursHandler commands.UpdateDriverHoursCommandHandler
	assignOrderHandler       commands.AssignOrderCommandHandler
	runAssignmentsHandler    commands.RunAssignmentsCommandHandler

	// Query handlers
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getAllDriversHandler     queries.GetAllDriversQueryHandler
	getAllAssignmentsHandler queries.GetAllAssignmentsQueryHandler
	getAllRoutesHandler      queries.GetAllRoutesQueryHandler
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler

	// db backs the health endpoint's storage probe.
	db *gorm.DB
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	updateDriverHoursHandler commands.UpdateDriverHoursCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	runAssignmentsHandler commands.RunAssignmentsCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getAllDriversHandler queries.GetAllDriversQueryHandler,
	getAllAssignmentsHandler queries.GetAllAssignmentsQueryHandler,
	getAllRoutesHandler queries.GetAllRoutesQueryHandler,
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler,
	db *gorm.DB,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		createDriverHandler:      createDriverHandler,
		updateDriverHoursHandler: updateDriverHoursHandler,
		assignOrderHandler:       assignOrderHandler,
		runAssignmentsHandler:    runAssignmentsHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getAllDriversHandler:     getAllDriversHandler,
		getAllAssignmentsHandler: getAllAssignmentsHandler,
		getAllRoutesHandler:      getAllRoutesHandler,
		getDashboardStatsHandler: getDashboardStatsHandler,
		db:                       db,
	}
}

// RegisterRoutes mounts all endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/drivers", s.GetDrivers)
	api.POST("/drivers", s.CreateDriver)
	api.PUT("/drivers/:id/hours", s.UpdateDriverHours)
	api.GET("/assignments", s.GetAssignments)
	api.POST("/assignments", s.RunAssignments)
	api.POST("/assignments/manual", s.AssignOrder)
	api.GET("/routes", s.GetRoutes)
	api.GET("/dashboard/stats", s.GetDashboardStats)
}

// GetOrders handles GET /api/v1/orders - lists active orders with their
// route and assignment context.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = newOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - registers a new order,
// optionally creating a route from distance and traffic level.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	var trafficLevel *route.TrafficLevel
	if req.TrafficLevel != nil {
		level, err := route.ParseTrafficLevel(*req.TrafficLevel)
		if err != nil {
			return writeError(ctx, err)
		}
		trafficLevel = &level
	}

	cmd, err := commands.NewCreateOrderCommand(req.ValueRs, req.DeliveryTimeMin, req.DistanceKm, trafficLevel)
	if err != nil {
		return writeBadRequest(ctx, "invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newOrderCreatedResponse(created))
}

// GetDrivers handles GET /api/v1/drivers - lists active drivers with their
// workload breakdown.
func (s *Server) GetDrivers(ctx echo.Context) error {
	drivers, err := s.getAllDriversHandler.Handle(ctx.Request().Context(), queries.NewGetAllDriversQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]driverResponse, len(drivers))
	for i, d := range drivers {
		response[i] = newDriverResponse(d)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/v1/drivers - registers a new driver.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req createDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	pastWeek := driver.WeekHours{}
	if req.PastWeekHours != nil {
		week, err := driver.NewWeekHours(req.PastWeekHours)
		if err != nil {
			return writeError(ctx, err)
		}
		pastWeek = week
	}

	cmd, err := commands.NewCreateDriverCommand(req.Name, req.ShiftHours, pastWeek)
	if err != nil {
		return writeBadRequest(ctx, "invalid driver data: "+err.Error())
	}

	created, err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newDriverCreatedResponse(created))
}

// UpdateDriverHours handles PUT /api/v1/drivers/:id/hours - replaces a
// driver's past-week hours.
func (s *Server) UpdateDriverHours(ctx echo.Context) error {
	driverID, err := kernel.ParseID(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid driver id")
	}

	var req updateDriverHoursRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	pastWeek, err := driver.NewWeekHours(req.PastWeekHours)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateDriverHoursCommand(driverID, pastWeek)
	if err != nil {
		return writeBadRequest(ctx, "invalid hours data: "+err.Error())
	}

	updated, err := s.updateDriverHoursHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newDriverCreatedResponse(updated))
}

// GetAssignments handles GET /api/v1/assignments - lists active assignments
// with the summary block.
func (s *Server) GetAssignments(ctx echo.Context) error {
	result, err := s.getAllAssignmentsHandler.Handle(ctx.Request().Context(), queries.NewGetAllAssignmentsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newAssignmentListResponse(result))
}

// RunAssignments handles POST /api/v1/assignments - one bulk assignment run.
func (s *Server) RunAssignments(ctx echo.Context) error {
	var req runAssignmentsRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRunAssignmentsCommand(req.MaxOrdersPerRun, req.DryRun, req.ForceReassign)
	if err != nil {
		return writeBadRequest(ctx, "invalid run parameters: "+err.Error())
	}

	result, err := s.runAssignmentsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newRunAssignmentsResponse(result))
}

// AssignOrder handles POST /api/v1/assignments/manual - assigns one order to
// a driver chosen by ID or exact name.
func (s *Server) AssignOrder(ctx echo.Context) error {
	var req manualAssignRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.NewID(req.OrderID)
	if err != nil {
		return writeBadRequest(ctx, "invalid order id: "+strconv.FormatInt(req.OrderID, 10))
	}

	driverRef, err := req.driverRef()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, driverRef)
	if err != nil {
		return writeBadRequest(ctx, "invalid assignment data: "+err.Error())
	}

	result, err := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newManualAssignResponse(result))
}

// GetRoutes handles GET /api/v1/routes - lists active routes with their
// adjusted estimates and order counts.
func (s *Server) GetRoutes(ctx echo.Context) error {
	routes, err := s.getAllRoutesHandler.Handle(ctx.Request().Context(), queries.NewGetAllRoutesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]routeResponse, len(routes))
	for i, r := range routes {
		response[i] = routeResponse(r)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDashboardStats handles GET /api/v1/dashboard/stats.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	stats, err := s.getDashboardStatsHandler.Handle(ctx.Request().Context(), queries.NewGetDashboardStatsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dashboardStatsResponse(stats))
}

// Health handles GET /health - liveness plus a storage round trip.
func (s *Server) Health(ctx echo.Context) error {
	if err := s.db.WithContext(ctx.Request().Context()).Exec("SELECT 1").Error; err != nil {
		return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
		})
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
