package rider

import (
	"errors"
	"strings"
	"time"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/pkg/errs"
	"courierdispatch/internal/pkg/guard"
)

var (
	ErrNameIsRequired  = errs.NewValueIsRequiredError("name")
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrRiderIsNotConstructed is returned when using an improperly initialized Rider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")
)

// Profile is what a rider submits when applying.
type Profile struct {
	Name             string
	Email            string
	Phone            string
	Region           string
	Districts        []string
	NID              string
	BikeBrand        string
	BikeRegistration string
}

// Rider is an applicant or active courier.
type Rider struct {
	id          kernel.UUID
	profile     Profile
	status      ApprovalStatus
	worksStatus WorksStatus
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewRider creates a pending, available rider.
func NewRider(id kernel.UUID, profile Profile, createdAt time.Time) (*Rider, error) {
	r := &Rider{
		status:      Pending,
		worksStatus: Available,
		createdAt:   createdAt.UTC(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setProfile(profile),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRider rebuilds a rider from persisted state.
func RestoreRider(
	id kernel.UUID,
	profile Profile,
	status ApprovalStatus,
	worksStatus WorksStatus,
	createdAt time.Time,
) (*Rider, error) {
	r := &Rider{
		profile:     profile,
		status:      status,
		worksStatus: worksStatus,
		createdAt:   createdAt.UTC(),
		guard:       guard.NewConstructorGuard(),
	}
	if err := r.setID(id); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

func (r *Rider) ID() kernel.UUID          { return r.id }
func (r *Rider) Name() string             { return r.profile.Name }
func (r *Rider) Email() string            { return r.profile.Email }
func (r *Rider) Status() ApprovalStatus   { return r.status }
func (r *Rider) WorksStatus() WorksStatus { return r.worksStatus }
func (r *Rider) CreatedAt() time.Time     { return r.createdAt }

// Profile returns a copy of the submitted application.
func (r *Rider) Profile() Profile {
	p := r.profile
	p.Districts = append([]string(nil), r.profile.Districts...)
	return p
}

// ServesDistrict reports whether district is one of the rider's service districts.
func (r *Rider) ServesDistrict(district string) bool {
	for _, d := range r.profile.Districts {
		if strings.EqualFold(d, district) {
			return true
		}
	}
	return false
}

// Review records an admin decision. Any decision makes the rider available again.
func (r *Rider) Review(status ApprovalStatus) error {
	if _, err := ParseApprovalStatus(string(status)); err != nil {
		return err
	}
	r.status = status
	r.worksStatus = Available
	return nil
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setProfile(p Profile) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))

	var problems []error
	if p.Name == "" {
		problems = append(problems, ErrNameIsRequired)
	}
	if p.Email == "" {
		problems = append(problems, ErrEmailIsRequired)
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	districts := make([]string, 0, len(p.Districts))
	for _, d := range p.Districts {
		if d = strings.TrimSpace(d); d != "" {
			districts = append(districts, d)
		}
	}
	p.Districts = districts
	r.profile = p
	return nil
}
