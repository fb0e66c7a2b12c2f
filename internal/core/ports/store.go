package ports

// Store hands out repositories over one shared database handle.
//
// There is no transaction boundary: every repository call is an independent write,
// and multi-record operations are ordered sequences of such writes.
type Store interface {
	ParcelRepository() ParcelRepository
	RiderRepository() RiderRepository
	PaymentRepository() PaymentRepository
	TrackingRepository() TrackingRepository
	UserRepository() UserRepository
}
