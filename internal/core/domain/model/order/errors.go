package order

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two rejection modes of a transition request.
// Use errors.Is against these; the typed errors below carry the detail a
// caller needs to decide the next action.
var (
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrRoleNotAuthorized = errors.New("role is not authorized for transition")
)

// IllegalTransitionError reports a transition request that does not advance
// the order by exactly one stage: a jump, a regression, a repeat of an
// already-passed stage, or any move out of the terminal stage.
type IllegalTransitionError struct {
	// Current is the status the order held when the request was validated.
	Current Status
	// Requested is the status the caller asked to move to.
	Requested Status
}

// NewIllegalTransitionError creates an IllegalTransitionError for the given
// current and requested statuses.
func NewIllegalTransitionError(current, requested Status) *IllegalTransitionError {
	return &IllegalTransitionError{Current: current, Requested: requested}
}

func (e *IllegalTransitionError) Error() string {
	next, ok := NextStatus(e.Current)
	if !ok {
		return fmt.Sprintf("%s: %s is terminal, cannot move to %s",
			ErrIllegalTransition, e.Current, e.Requested)
	}
	return fmt.Sprintf("%s: cannot move from %s to %s, next stage is %s",
		ErrIllegalTransition, e.Current, e.Requested, next)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// RoleNotAuthorizedError reports a transition request whose target stage is
// the correct next stage but whose acting role is not the one bound to it.
type RoleNotAuthorizedError struct {
	// Actor is the role that attempted the transition.
	Actor Role
	// Required is the role bound to the requested stage.
	Required Role
	// Requested is the status the caller asked to move to.
	Requested Status
}

// NewRoleNotAuthorizedError creates a RoleNotAuthorizedError for the given
// actor, required role, and requested status.
func NewRoleNotAuthorizedError(actor, required Role, requested Status) *RoleNotAuthorizedError {
	return &RoleNotAuthorizedError{Actor: actor, Required: required, Requested: requested}
}

func (e *RoleNotAuthorizedError) Error() string {
	return fmt.Sprintf("%s: %s cannot move order to %s, requires %s",
		ErrRoleNotAuthorized, e.Actor, e.Requested, e.Required)
}

func (e *RoleNotAuthorizedError) Unwrap() error {
	return ErrRoleNotAuthorized
}
