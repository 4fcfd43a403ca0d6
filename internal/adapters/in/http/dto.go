package http

import (
	"encoding/json"
	"strconv"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createOrderRequest struct {
	ValueRs         float64  `json:"valueRs"`
	DeliveryTimeMin int      `json:"deliveryTimeMin"`
	DistanceKm      *float64 `json:"distanceKm,omitempty"`
	TrafficLevel    *string  `json:"trafficLevel,omitempty"`
}

type createDriverRequest struct {
	Name          string    `json:"name"`
	ShiftHours    float64   `json:"shiftHours"`
	PastWeekHours []float64 `json:"pastWeekHours,omitempty"`
}

type updateDriverHoursRequest struct {
	PastWeekHours []float64 `json:"pastWeekHours"`
}

type runAssignmentsRequest struct {
	MaxOrdersPerRun int  `json:"maxOrdersPerRun"`
	DryRun          bool `json:"dryRun"`
	ForceReassign   bool `json:"forceReassign"`
}

// manualAssignRequest accepts the driver reference as either a JSON number
// (driver ID) or a JSON string (ID or exact name).
type manualAssignRequest struct {
	OrderID  int64           `json:"orderId"`
	DriverID json.RawMessage `json:"driverId"`
}

func (r manualAssignRequest) driverRef() (string, error) {
	var id int64
	if err := json.Unmarshal(r.DriverID, &id); err == nil {
		return strconv.FormatInt(id, 10), nil
	}

	var s string
	if err := json.Unmarshal(r.DriverID, &s); err == nil {
		return s, nil
	}

	return "", errs.NewValueIsInvalidError("driverId")
}

type orderCreatedResponse struct {
	ID              int64   `json:"id"`
	ValueRs         float64 `json:"valueRs"`
	DeliveryTimeMin int     `json:"deliveryTimeMin"`
	RouteID         *int64  `json:"routeId,omitempty"`
}

func newOrderCreatedResponse(o *order.Order) orderCreatedResponse {
	resp := orderCreatedResponse{
		ID:              o.ID().Int64(),
		ValueRs:         o.ValueRs(),
		DeliveryTimeMin: o.DeliveryTimeMin(),
	}
	if o.HasRoute() {
		routeID := o.RouteID().Int64()
		resp.RouteID = &routeID
	}
	return resp
}

type orderRouteResponse struct {
	ID           int64   `json:"id"`
	DistanceKm   float64 `json:"distanceKm"`
	TrafficLevel string  `json:"trafficLevel"`
	BaseTimeMin  int     `json:"baseTimeMin"`
}

type orderResponse struct {
	ID               int64               `json:"id"`
	ValueRs          float64             `json:"valueRs"`
	DeliveryTimeMin  int                 `json:"deliveryTimeMin"`
	EstimatedTimeMin int                 `json:"estimatedTimeMin"`
	Route            *orderRouteResponse `json:"route,omitempty"`
	Assigned         bool                `json:"assigned"`
	DriverID         *int64              `json:"driverId,omitempty"`
	DriverName       *string             `json:"driverName,omitempty"`
}

func newOrderResponse(q queries.GetAllOrdersQueryResponse) orderResponse {
	resp := orderResponse{
		ID:               q.ID,
		ValueRs:          q.ValueRs,
		DeliveryTimeMin:  q.DeliveryTimeMin,
		EstimatedTimeMin: q.EstimatedTimeMin,
		Assigned:         q.Assigned,
		DriverID:         q.DriverID,
		DriverName:       q.DriverName,
	}
	if q.Route != nil {
		resp.Route = &orderRouteResponse{
			ID:           q.Route.ID,
			DistanceKm:   q.Route.DistanceKm,
			TrafficLevel: q.Route.TrafficLevel,
			BaseTimeMin:  q.Route.BaseTimeMin,
		}
	}
	return resp
}

type driverCreatedResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	ShiftHours    float64   `json:"shiftHours"`
	PastWeekHours []float64 `json:"pastWeekHours"`
}

func newDriverCreatedResponse(d *driver.Driver) driverCreatedResponse {
	return driverCreatedResponse{
		ID:            d.ID().Int64(),
		Name:          d.Name(),
		ShiftHours:    d.ShiftHours(),
		PastWeekHours: d.PastWeek().Slice(),
	}
}

type driverResponse struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	ShiftHours         float64   `json:"shiftHours"`
	PastWeekHours      []float64 `json:"pastWeekHours"`
	PastWeekTotal      float64   `json:"pastWeekTotal"`
	AssignmentCount    int       `json:"assignmentCount"`
	CurrentWorkloadMin int       `json:"currentWorkloadMin"`
	WorkloadHours      float64   `json:"workloadHours"`
	RemainingHours     float64   `json:"remainingHours"`
	WorkloadPercentage int       `json:"workloadPercentage"`
}

func newDriverResponse(q queries.GetAllDriversQueryResponse) driverResponse {
	return driverResponse(q)
}

type assignmentResponse struct {
	ID                    int64     `json:"id"`
	OrderID               int64     `json:"orderId"`
	DriverID              int64     `json:"driverId"`
	DriverName            string    `json:"driverName"`
	EstimatedTimeMin      int       `json:"estimatedTimeMin"`
	AssignedAt            time.Time `json:"assignedAt"`
	EstimatedCompletionAt time.Time `json:"estimatedCompletionAt"`
}

type driverGroupResponse struct {
	DriverID        int64   `json:"driverId"`
	DriverName      string  `json:"driverName"`
	AssignmentCount int     `json:"assignmentCount"`
	TotalTimeMin    int     `json:"totalTimeMin"`
	TotalTimeHours  float64 `json:"totalTimeHours"`
}

type assignmentListResponse struct {
	Assignments          []assignmentResponse  `json:"assignments"`
	TotalAssignments     int                   `json:"totalAssignments"`
	AverageEstimatedTime float64               `json:"averageEstimatedTime"`
	ByDriver             []driverGroupResponse `json:"byDriver"`
}

func newAssignmentListResponse(q queries.GetAllAssignmentsQueryResponse) assignmentListResponse {
	resp := assignmentListResponse{
		Assignments:          make([]assignmentResponse, len(q.Assignments)),
		TotalAssignments:     q.TotalAssignments,
		AverageEstimatedTime: q.AverageEstimatedTime,
		ByDriver:             make([]driverGroupResponse, len(q.ByDriver)),
	}
	for i, a := range q.Assignments {
		resp.Assignments[i] = assignmentResponse(a)
	}
	for i, g := range q.ByDriver {
		resp.ByDriver[i] = driverGroupResponse(g)
	}
	return resp
}

type routeResponse struct {
	ID               int64   `json:"id"`
	DistanceKm       float64 `json:"distanceKm"`
	TrafficLevel     string  `json:"trafficLevel"`
	Multiplier       float64 `json:"multiplier"`
	BaseTimeMin      int     `json:"baseTimeMin"`
	EstimatedTimeMin int     `json:"estimatedTimeMin"`
	ActiveOrderCount int     `json:"activeOrderCount"`
}

type dashboardStatsResponse struct {
	TotalOrders           int     `json:"totalOrders"`
	PendingAssignments    int     `json:"pendingAssignments"`
	AverageDeliveryTime   float64 `json:"averageDeliveryTime"`
	AssignmentRate        int     `json:"assignmentRate"`
	TotalAssignments      int     `json:"totalAssignments"`
	TotalDrivers          int     `json:"totalDrivers"`
	AverageDriverWorkload float64 `json:"averageDriverWorkload"`
}

type matchResponse struct {
	OrderID          int64  `json:"orderId"`
	DriverID         int64  `json:"driverId"`
	DriverName       string `json:"driverName"`
	EstimatedTimeMin int    `json:"estimatedTimeMin"`
}

type skippedOrderResponse struct {
	OrderID int64  `json:"orderId"`
	Reason  string `json:"reason"`
}

type runSummaryResponse struct {
	TotalOrdersProcessed int `json:"totalOrdersProcessed"`
	TotalOrdersAssigned  int `json:"totalOrdersAssigned"`
}

type runAssignmentsResponse struct {
	RunID         string                 `json:"runId"`
	DryRun        bool                   `json:"dryRun"`
	Assignments   []matchResponse        `json:"assignments"`
	SkippedOrders []skippedOrderResponse `json:"skippedOrders"`
	Summary       runSummaryResponse     `json:"summary"`
}

func newRunAssignmentsResponse(result commands.RunAssignmentsResult) runAssignmentsResponse {
	resp := runAssignmentsResponse{
		RunID:         result.RunID.String(),
		DryRun:        result.DryRun,
		Assignments:   make([]matchResponse, len(result.Matches)),
		SkippedOrders: make([]skippedOrderResponse, len(result.Skipped)),
		Summary: runSummaryResponse{
			TotalOrdersProcessed: result.TotalOrdersProcessed,
			TotalOrdersAssigned:  result.TotalOrdersAssigned,
		},
	}
	for i, m := range result.Matches {
		resp.Assignments[i] = matchResponse{
			OrderID:          m.Order.ID().Int64(),
			DriverID:         m.Driver.ID().Int64(),
			DriverName:       m.Driver.Name(),
			EstimatedTimeMin: m.EstimatedTimeMin,
		}
	}
	for i, s := range result.Skipped {
		resp.SkippedOrders[i] = skippedOrderResponse{
			OrderID: s.Order.ID().Int64(),
			Reason:  s.Reason,
		}
	}
	return resp
}

type manualAssignResponse struct {
	ID                    int64     `json:"id"`
	OrderID               int64     `json:"orderId"`
	DriverID              int64     `json:"driverId"`
	DriverName            string    `json:"driverName"`
	EstimatedTimeMin      int       `json:"estimatedTimeMin"`
	AssignedAt            time.Time `json:"assignedAt"`
	EstimatedCompletionAt time.Time `json:"estimatedCompletionAt"`
}

func newManualAssignResponse(result commands.AssignOrderResult) manualAssignResponse {
	a := result.Assignment
	return manualAssignResponse{
		ID:                    a.ID().Int64(),
		OrderID:               a.OrderID().Int64(),
		DriverID:              a.DriverID().Int64(),
		DriverName:            result.Driver.Name(),
		EstimatedTimeMin:      a.EstimatedTimeMin(),
		AssignedAt:            a.AssignedAt(),
		EstimatedCompletionAt: a.EstimatedCompletionTime(),
	}
}
