package subscription

import (
	"time"

	"github.com/navalhaapp/barber-dashboard/internal/models"
)

// ===============================
// Benefit variant
// ===============================

type BenefitKind int

const (
	BenefitNone BenefitKind = iota
	BenefitFree
	BenefitPercentage
)

type Benefit struct {
	Kind    BenefitKind
	Percent float64
}

const (
	ItemService = "service"
	ItemProduct = "product"
)

// BenefitFor looks up the plan benefit covering one catalog item.
func BenefitFor(plan *models.Plan, itemType string, itemID uint) Benefit {
	if plan == nil {
		return Benefit{Kind: BenefitNone}
	}

	for _, b := range plan.Benefits {
		if b.ItemType != itemType || b.ItemID != itemID {
			continue
		}
		switch b.BenefitType {
		case "free":
			return Benefit{Kind: BenefitFree}
		case "percentage":
			return Benefit{Kind: BenefitPercentage, Percent: b.Percent}
		}
	}

	return Benefit{Kind: BenefitNone}
}

// ResolvePrice applies a benefit to a base price. Benefits only apply when
// the subscription is valid on the visit's day; otherwise the base price
// stands untouched.
func ResolvePrice(base float64, b Benefit, validToday bool) float64 {
	if !validToday {
		return base
	}

	switch b.Kind {
	case BenefitFree:
		return 0
	case BenefitPercentage:
		final := base - base*b.Percent/100
		if final < 0 {
			return 0
		}
		return final
	default:
		return base
	}
}

// ValidOn reports whether sub grants benefits on the given date: the
// subscription must be active, the date inside its term, and the weekday in
// the plan's allowed set.
func ValidOn(sub *models.Subscription, date time.Time) bool {
	if sub == nil || !sub.Active {
		return false
	}
	if date.Before(truncateDay(sub.StartDate)) {
		return false
	}
	if !sub.EndDate.IsZero() && !date.Before(sub.EndDate) {
		return false
	}
	return sub.Plan.AllowedDays.Contains(date.Weekday())
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
