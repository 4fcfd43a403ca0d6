package kernel

import (
	"strconv"

	"dispatch/internal/pkg/errs"
)

// ID is the identifier of a persisted entity. The store assigns identifiers
// as positive integers; the zero value means "not yet persisted" and fails
// validation.
type ID struct {
	value int64
}

// NewID creates an ID from a raw value. The value must be positive.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidError("id must be a positive integer")
	}
	return ID{value: value}, nil
}

// ParseID creates an ID from its decimal string form.
func ParseID(s string) (ID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(value)
}

// Validate returns an error for the zero (unpersisted) ID.
func (id ID) Validate() error {
	if id.value <= 0 {
		return errs.NewValueIsInvalidError("id must be a positive integer")
	}
	return nil
}

// IsEqual compares two IDs by value.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Int64 returns the raw identifier value.
func (id ID) Int64() int64 {
	return id.value
}

// String returns the decimal form of the identifier.
func (id ID) String() string {
	return strconv.FormatInt(id.value, 10)
}
