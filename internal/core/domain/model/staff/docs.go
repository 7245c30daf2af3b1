// Package staff provides the staff account aggregate for the fulfillment
// system. An account binds a person to exactly one actor role (Picker,
// Forwarder, Shipper, Courier, or Receiver) and stores credentials as
// bcrypt hashes.
//
// Session and token issuance are presentation concerns and live outside the
// core; this package only models credential storage and verification.
package staff
