package services

import (
	"sort"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// SkipReasonNoCapacity is recorded on orders skipped because no driver had
// sufficient remaining capacity.
const SkipReasonNoCapacity = "no driver with sufficient remaining capacity"

// Match pairs one order with the driver selected for it. EstimatedTimeMin is
// the value to freeze onto the created assignment (bulk uses RawEstimate).
type Match struct {
	Order            *order.Order
	Driver           *driver.Driver
	EstimatedTimeMin int
}

// SkippedOrder records an order no driver could absorb in this run.
// Skipping is an expected outcome, not an error.
type SkippedOrder struct {
	Order  *order.Order
	Reason string
}

// MatchResult is the outcome of one matcher invocation.
type MatchResult struct {
	Matches []Match
	Skipped []SkippedOrder
}

// AssignmentMatcher selects a driver per unassigned order using a greedy,
// order-priority, least-loaded-first policy.
//
// Algorithm, per order in ascending identifier sequence (capped at maxBatch):
//  1. compute each driver's remaining capacity against a running workload
//     view that includes tentative matches made earlier in the same run
//  2. keep drivers whose remaining capacity covers the order's raw
//     deliveryTimeMin (raw policy; the adjusted estimate is a manual-path
//     concern, see EstimatePolicy)
//  3. pick the lowest running workload; ties break to the lowest driver ID
//     so an identical snapshot always yields an identical mapping
//  4. no eligible driver → the order is skipped and processing continues
//
// The matcher is pure: it never writes; the surrounding transaction turns
// matches into assignments.
type AssignmentMatcher struct {
	workload WorkloadCalculator
}

// NewAssignmentMatcher creates a new AssignmentMatcher.
func NewAssignmentMatcher() AssignmentMatcher {
	return AssignmentMatcher{workload: NewWorkloadCalculator()}
}

// Match computes the order→driver mapping for one bulk run.
// initialWorkloadMin carries each driver's committed minutes at the start of
// the run, keyed by driver ID; drivers absent from the map start at zero.
func (m AssignmentMatcher) Match(
	unassignedOrders []*order.Order,
	drivers []*driver.Driver,
	initialWorkloadMin map[int64]int,
	maxBatch int,
) (MatchResult, error) {
	if maxBatch <= 0 {
		return MatchResult{}, errs.NewValueIsInvalidError("maxBatch must be positive")
	}

	for _, d := range drivers {
		if err := d.Validate(); err != nil {
			return MatchResult{}, err
		}
	}

	candidates := make([]*order.Order, len(unassignedOrders))
	copy(candidates, unassignedOrders)
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ID().Int64() < candidates[j].ID().Int64()
	})
	if len(candidates) > maxBatch {
		candidates = candidates[:maxBatch]
	}

	pool := make([]*driver.Driver, len(drivers))
	copy(pool, drivers)
	sort.Slice(pool, func(i, j int) bool {
		return pool[i].ID().Int64() < pool[j].ID().Int64()
	})

	running := make(map[int64]int, len(pool))
	for id, minutes := range initialWorkloadMin {
		running[id] = minutes
	}

	result := MatchResult{
		Matches: make([]Match, 0, len(candidates)),
		Skipped: make([]SkippedOrder, 0),
	}

	for _, o := range candidates {
		if err := o.Validate(); err != nil {
			return MatchResult{}, err
		}

		best := m.pickDriver(o, pool, running)
		if best == nil {
			result.Skipped = append(result.Skipped, SkippedOrder{
				Order:  o,
				Reason: SkipReasonNoCapacity,
			})
			continue
		}

		estimate, err := RawEstimate(o, nil)
		if err != nil {
			return MatchResult{}, err
		}

		result.Matches = append(result.Matches, Match{
			Order:            o,
			Driver:           best,
			EstimatedTimeMin: estimate,
		})
		running[best.ID().Int64()] += o.DeliveryTimeMin()
	}

	return result, nil
}

// pickDriver returns the least-loaded eligible driver for the order, or nil.
// The pool is pre-sorted by ascending ID, so a strict less-than comparison
// keeps the lowest ID on ties.
func (m AssignmentMatcher) pickDriver(
	o *order.Order,
	pool []*driver.Driver,
	running map[int64]int,
) *driver.Driver {
	var (
		best         *driver.Driver
		bestWorkload int
	)

	for _, d := range pool {
		workload := running[d.ID().Int64()]
		if m.workload.RemainingCapacity(d, workload) < float64(o.DeliveryTimeMin()) {
			continue
		}

		if best == nil || workload < bestWorkload {
			best = d
			bestWorkload = workload
		}
	}

	return best
}
