package ports

import "context"

// RoutePlanner produces a human-readable delivery route over a set of drop-off
// addresses starting from a depot. Implementations may call out to an external
// model; callers must treat the result as advisory text, not structured data.
type RoutePlanner interface {
	PlanRoute(ctx context.Context, depot string, addresses []string) (string, error)
}
