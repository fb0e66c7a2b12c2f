package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/pkg/errs"
	"courierdispatch/internal/pkg/guard"
)

var (
	ErrEmailIsRequired      = errs.NewValueIsRequiredError("email")
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

type Role string

const (
	RoleUser  Role = "user"
	RoleRider Role = "rider"
	RoleAdmin Role = "admin"
)

func ParseRole(raw string) (Role, error) {
	r := Role(strings.TrimSpace(raw))
	switch r {
	case RoleUser, RoleRider, RoleAdmin:
		return r, nil
	case "":
		return "", errs.NewValueIsRequiredError("role")
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", raw))
	}
}

func (r Role) String() string {
	return string(r)
}

type User struct {
	id          kernel.UUID
	email       string
	displayName string
	photoURL    string
	role        Role
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewUser registers an account with the user role.
func NewUser(id kernel.UUID, email, displayName, photoURL string, createdAt time.Time) (*User, error) {
	email = NormalizeEmail(email)

	var problems []error
	if err := id.Validate(); err != nil {
		problems = append(problems, err)
	}
	if email == "" {
		problems = append(problems, ErrEmailIsRequired)
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &User{
		id:          id,
		email:       email,
		displayName: strings.TrimSpace(displayName),
		photoURL:    strings.TrimSpace(photoURL),
		role:        RoleUser,
		createdAt:   createdAt.UTC(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreUser rebuilds a persisted account.
func RestoreUser(id kernel.UUID, email, displayName, photoURL string, role Role, createdAt time.Time) *User {
	return &User{
		id:          id,
		email:       email,
		displayName: displayName,
		photoURL:    photoURL,
		role:        role,
		createdAt:   createdAt.UTC(),
		guard:       guard.NewConstructorGuard(),
	}
}

// NormalizeEmail is the canonical form used for lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID      { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) DisplayName() string  { return u.displayName }
func (u *User) PhotoURL() string     { return u.photoURL }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) IsAdmin() bool        { return u.role == RoleAdmin }

// PromoteToRider is applied when the matching rider application is approved.
// Admins keep their role.
func (u *User) PromoteToRider() {
	if u.role != RoleAdmin {
		u.role = RoleRider
	}
}

// ChangeRole sets any valid role.
func (u *User) ChangeRole(role Role) error {
	if _, err := ParseRole(string(role)); err != nil {
		return err
	}
	u.role = role
	return nil
}
