// Package driver contains the Driver aggregate.
package driver

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrDriverIsNotConstructed is returned when using a Driver that was not
	// created via NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Driver represents a delivery agent with a bounded daily shift.
//
// Key responsibilities:
//   - carrying the shift length that bounds the driver's committed workload
//   - tracking the hours worked over the preceding week
//
// Business rules:
//   - name must be non-empty (and unique among active drivers, enforced by storage)
//   - shift length is between 0 (exclusive) and 24 (inclusive) hours
//   - each past-week entry is between 0 and 24 hours
//
// The driver's capacity ceiling is MaxWorkloadMin: shiftHours × 60. The
// workload calculator compares committed assignment minutes against it and
// must never let the sum exceed it after an assignment operation.
type Driver struct {
	id         kernel.ID
	name       string
	shiftHours float64
	pastWeek   WeekHours
	guard      guard.ConstructorGuard
}

// NewDriver creates an unpersisted Driver. The store assigns the identifier
// on first save.
func NewDriver(name string, shiftHours float64, pastWeek WeekHours) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setName(name),
		d.setShiftHours(shiftHours),
		d.setPastWeek(pastWeek),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistent storage.
func RestoreDriver(id kernel.ID, name string, shiftHours float64, pastWeek WeekHours) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setShiftHours(shiftHours),
		d.setPastWeek(pastWeek),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by identifier.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver identifier; zero until the driver is persisted.
func (d *Driver) ID() kernel.ID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// ShiftHours returns the length of the driver's daily shift in hours.
func (d *Driver) ShiftHours() float64 {
	return d.shiftHours
}

// PastWeek returns the hours worked on each of the preceding seven days.
func (d *Driver) PastWeek() WeekHours {
	return d.pastWeek
}

// MaxWorkloadMin returns the capacity ceiling in minutes: shiftHours × 60.
func (d *Driver) MaxWorkloadMin() float64 {
	return d.shiftHours * 60
}

// ReplacePastWeek swaps in a new past-week hours sequence.
func (d *Driver) ReplacePastWeek(pastWeek WeekHours) error {
	return d.setPastWeek(pastWeek)
}

func (d *Driver) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	d.name = name
	return nil
}

func (d *Driver) setShiftHours(shiftHours float64) error {
	if shiftHours <= 0 || shiftHours > 24 {
		return errs.NewValueIsOutOfRangeError("shiftHours", shiftHours, 0, 24)
	}

	d.shiftHours = shiftHours
	return nil
}

func (d *Driver) setPastWeek(pastWeek WeekHours) error {
	// WeekHours is validated at construction; re-check the range so restored
	// rows with corrupt data fail here instead of skewing workload metrics.
	if _, err := NewWeekHours(pastWeek.Slice()); err != nil {
		return err
	}

	d.pastWeek = pastWeek
	return nil
}
