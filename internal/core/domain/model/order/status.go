package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle stage of an order.
// It implements a state machine with a fixed total order: every order walks
// the same five stages, one step at a time, and never regresses.
//
// Stage sequence:
//
//	Created -> Picked -> TransitToSZ -> CustomsCleared -> POD
//
// POD (proof of delivery) is terminal. Which role may cause each transition
// is defined by the stage table in stage.go; Status itself only knows the
// ordering.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first created.
	// Orders in this status are waiting at the picking station.
	Created

	// Picked indicates all items of the order have been picked.
	Picked

	// TransitToSZ indicates the order is in transit to the Shenzhen hub.
	TransitToSZ

	// CustomsCleared indicates the shipment has cleared customs.
	CustomsCleared

	// POD indicates proof of delivery was captured. This is the final
	// state with no further transitions allowed.
	POD
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Created:        "CREATED",
		Picked:         "PICKED",
		TransitToSZ:    "TRANSIT_TO_SZ",
		CustomsCleared: "CUSTOMS_CLEARED",
		POD:            "POD",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:        "CREATED",
		Picked:         "PICKED",
		TransitToSZ:    "TRANSIT_TO_SZ",
		CustomsCleared: "CUSTOMS_CLEARED",
		POD:            "POD",
	}
}

// StatusFromString parses a Status from its wire representation
// ("CREATED", "PICKED", ...). Returns an error when the string names no
// member of the status enum, which is the InvalidStatus failure mode for
// transition requests and creation requests carrying an explicit status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is a member of the stage enum.
//
// Valid statuses are: Created, Picked, TransitToSZ, CustomsCleared, POD.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status ("CREATED", "PICKED",
// "TRANSIT_TO_SZ", "CUSTOMS_CLEARED", "POD"), or "UNKNOWN" for invalid
// values. Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no further transitions.
// Only POD is terminal.
func (s Status) IsTerminal() bool {
	return s == POD
}
