package commands

import (
	"context"
	"errors"
	"strings"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/rider"
	"courierdispatch/internal/pkg/errs"
	"courierdispatch/internal/pkg/guard"
)

var ErrReviewRiderCommandIsNotConstructed = errors.New(
	"ReviewRiderCommand must be created via NewReviewRiderCommand constructor",
)

// ReviewRiderCommand records an admin decision on a rider application.
type ReviewRiderCommand struct {
	riderID kernel.UUID
	status  rider.ApprovalStatus
	email   string

	guard guard.ConstructorGuard
}

// NewReviewRiderCommand builds the command. email selects the user account promoted
// on approval; when empty the rider's own email is used.
func NewReviewRiderCommand(riderID kernel.UUID, rawStatus, email string) (ReviewRiderCommand, error) {
	status, err := rider.ParseApprovalStatus(rawStatus)
	if err = errors.Join(riderID.Validate(), err); err != nil {
		return ReviewRiderCommand{}, err
	}
	return ReviewRiderCommand{
		riderID: riderID,
		status:  status,
		email:   strings.ToLower(strings.TrimSpace(email)),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ReviewRiderCommand) Validate() error {
	return c.guard.Validate(ErrReviewRiderCommandIsNotConstructed)
}

// ReviewRiderResult reports the writes made. UserPromoted is false when the rider
// was not approved or no account uses the email.
type ReviewRiderResult struct {
	RiderUpdated bool
	UserPromoted bool
}

// ReviewRiderCommandHandler applies the decision and, on approval, promotes the
// matching user account to the rider role. The two writes are independent.
type ReviewRiderCommandHandler struct {
	store RiderReviewStore
}

func NewReviewRiderCommandHandler(store RiderReviewStore) ReviewRiderCommandHandler {
	return ReviewRiderCommandHandler{store: store}
}

func (h ReviewRiderCommandHandler) Handle(ctx context.Context, cmd ReviewRiderCommand) (ReviewRiderResult, error) {
	var res ReviewRiderResult
	if err := cmd.Validate(); err != nil {
		return res, err
	}

	riders := h.store.RiderRepository()

	r, err := riders.Get(ctx, cmd.riderID)
	if err != nil {
		return res, err
	}
	if err = r.Review(cmd.status); err != nil {
		return res, err
	}
	if err = riders.UpdateReview(ctx, r); err != nil {
		return res, err
	}
	res.RiderUpdated = true

	if cmd.status != rider.Approved {
		return res, nil
	}

	email := cmd.email
	if email == "" {
		email = r.Email()
	}

	users := h.store.UserRepository()
	u, err := users.GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return res, nil
	}
	if err != nil {
		return res, err
	}

	u.PromoteToRider()
	if err = users.UpdateRole(ctx, u); err != nil {
		return res, err
	}
	res.UserPromoted = true
	return res, nil
}
