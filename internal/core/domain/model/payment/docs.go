// Package payment provides the Payment record written once per settled checkout.
//
// A Payment is keyed by the provider's transaction id. At most one Payment exists per
// transaction id; storage enforces this with a unique index so that duplicate
// confirmations of the same checkout collapse into one row.
package payment
