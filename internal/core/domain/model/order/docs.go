// Package order provides domain entities and business logic for shipment
// order management in the fulfillment system. It implements the Order
// aggregate root, the fixed five-stage lifecycle, and the role-gated
// transition rules.
//
// The package includes:
//   - Order: the aggregate root carrying buyer details, items, and status
//   - Item: an immutable order line value object
//   - Status: the ordered five-stage lifecycle enum
//   - Role: the actor classes bound to stage-advancing actions
//   - the stage table: immutable lookups stageIndex/roleFor/nextStatus
//
// Key business rules:
//   - Orders advance CREATED -> PICKED -> TRANSIT_TO_SZ -> CUSTOMS_CLEARED -> POD,
//     exactly one stage at a time, never backwards
//   - Each transition may only be caused by the single role bound to the
//     target stage (Picker, Forwarder, Shipper, Courier; Receiver is reserved)
//   - The item set of an order is immutable after creation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
