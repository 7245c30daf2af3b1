package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Role identifies the class of actor attempting a stage transition.
// Each stage-advancing action is bound 1:1 to a role by the stage table;
// Receiver is defined but currently bound to no stage.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// Picker picks items at the warehouse and moves orders to Picked.
	Picker

	// Forwarder hands the shipment to the line-haul and moves orders to TransitToSZ.
	Forwarder

	// Shipper clears the shipment through customs and moves orders to CustomsCleared.
	Shipper

	// Courier performs the last mile and moves orders to POD.
	Courier

	// Receiver is reserved for future use; it advances no stage.
	Receiver
)

// getRoleStrings returns a map of Role values to their wire representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "UNKNOWN",
		Picker:      "PICKER",
		Forwarder:   "FORWARDER",
		Shipper:     "SHIPPER",
		Courier:     "COURIER",
		Receiver:    "RECEIVER",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		Picker:    "PICKER",
		Forwarder: "FORWARDER",
		Shipper:   "SHIPPER",
		Courier:   "COURIER",
		Receiver:  "RECEIVER",
	}
}

// RoleFromString parses a Role from its wire representation ("PICKER",
// "FORWARDER", ...). Matching is exact; returns an error for anything that
// names no member of the role enum.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is a member of the role enum.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire representation of the role, or "UNKNOWN" for
// invalid values. Implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
