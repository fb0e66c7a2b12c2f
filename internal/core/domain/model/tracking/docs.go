// Package tracking provides Entry, one record of the append-only parcel tracking ledger.
//
// Entries are keyed by tracking id, which is not unique across entries. Their order is
// the insertion order assigned by storage (Seq), never the wall clock.
package tracking
