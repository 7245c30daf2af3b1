// Package services provides domain services that derive information across
// the fulfillment model where the logic doesn't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - OrderAggregator: derives financial totals and lifecycle progress from
//     an order on every read
//
// Domain services stay free of infrastructure concerns; persistence and
// transport live in the adapters.
package services
