package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/navalhaapp/barber-dashboard/internal/audit"
	domain "github.com/navalhaapp/barber-dashboard/internal/domain/schedule"
	"github.com/navalhaapp/barber-dashboard/internal/httperr"
	"github.com/navalhaapp/barber-dashboard/internal/timezone"
)

// CascadeResult reports the outcome of a visit-wide status change.
type CascadeResult struct {
	VisitID     uuid.UUID     `json:"visit_id"`
	Status      domain.Status `json:"status"`
	RowsUpdated int64         `json:"rows_updated"`
}

type ConfirmVisit struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmVisit(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ConfirmVisit {
	return &ConfirmVisit{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ConfirmVisit) Execute(
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
	if err := domain.CanConfirm(domain.Status(head.Status)); err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)
	count, err := uc.repo.UpdateVisitStatus(
		ctx,
		head.ClientID,
		head.BarberID,
		head.Date,
		domain.StatusConfirmed,
		now,
	)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &actorID,
		Action:       audit.ActionVisitConfirmed,
		Entity:       "visit",
		EntityID:     &head.ID,
		Metadata:     map[string]any{"visit_id": visitID.String(), "rows": count},
	})

	return &CascadeResult{
		VisitID:     visitID,
		Status:      domain.StatusConfirmed,
		RowsUpdated: count,
	}, nil
}
