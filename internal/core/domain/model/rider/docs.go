// Package rider provides the Rider aggregate: a courier who applies, is reviewed by an
// admin and, once approved, carries parcels.
//
// The package includes:
//   - Rider: identity, contact, service districts, vehicle details and review state
//   - ApprovalStatus: pending, approved or rejected
//   - WorksStatus: available or in_delivery
//
// Key business rules:
//   - New riders start pending and available
//   - Every review resets the works status to available
//   - Works status is otherwise changed only by the parcel lifecycle
package rider
