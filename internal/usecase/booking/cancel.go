package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/navalhaapp/barber-dashboard/internal/audit"
	domain "github.com/navalhaapp/barber-dashboard/internal/domain/schedule"
	"github.com/navalhaapp/barber-dashboard/internal/httperr"
	"github.com/navalhaapp/barber-dashboard/internal/timezone"
)

type CancelVisit struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelVisit(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelVisit {
	return &CancelVisit{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelVisit) Execute(
	ctx context.Context,
	barbershopID uint,
	actorID uint,
	visitID uuid.UUID,
) (*CascadeResult, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.GetVisitRows(ctx, barbershopID, visitID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, httperr.ErrBusiness("visit_not_found")
	}

	head := rows[0]
	if err := domain.CanCancel(domain.Status(head.Status)); err != nil {
		return nil, err
	}

	// Rows are never deleted: cancelled rows stay for history and drop out
	// of occupancy checks.
	now := timezone.NowIn(shop.Timezone)
	count, err := uc.repo.UpdateVisitStatus(
		ctx,
		head.ClientID,
		head.BarberID,
		head.Date,
		domain.StatusCancelled,
		now,
	)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &actorID,
		Action:       audit.ActionVisitCancelled,
		Entity:       "visit",
		EntityID:     &head.ID,
		Metadata:     map[string]any{"visit_id": visitID.String(), "rows": count},
	})

	return &CascadeResult{
		VisitID:     visitID,
		Status:      domain.StatusCancelled,
		RowsUpdated: count,
	}, nil
}
