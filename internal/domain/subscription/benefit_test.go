package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/navalhaapp/barber-dashboard/internal/models"
)

func planWith(benefits ...models.PlanBenefit) *models.Plan {
	return &models.Plan{
		Name:        "Clube da Navalha",
		Price:       99.90,
		AllowedDays: models.Weekdays{1, 2, 3, 4, 5},
		Benefits:    benefits,
	}
}

func TestBenefitFor(t *testing.T) {
	plan := planWith(
		models.PlanBenefit{ItemType: "service", ItemID: 10, BenefitType: "percentage", Percent: 20},
		models.PlanBenefit{ItemType: "service", ItemID: 11, BenefitType: "free"},
		models.PlanBenefit{ItemType: "product", ItemID: 10, BenefitType: "percentage", Percent: 50},
	)

	b := BenefitFor(plan, ItemService, 10)
	assert.Equal(t, BenefitPercentage, b.Kind)
	assert.Equal(t, 20.0, b.Percent)

	b = BenefitFor(plan, ItemService, 11)
	assert.Equal(t, BenefitFree, b.Kind)

	// o mesmo ID em outro tipo de item não cruza
	b = BenefitFor(plan, ItemProduct, 11)
	assert.Equal(t, BenefitNone, b.Kind)

	b = BenefitFor(plan, ItemService, 99)
	assert.Equal(t, BenefitNone, b.Kind)

	b = BenefitFor(nil, ItemService, 10)
	assert.Equal(t, BenefitNone, b.Kind)
}

func TestResolvePrice(t *testing.T) {
	pct := Benefit{Kind: BenefitPercentage, Percent: 20}

	assert.Equal(t, 40.0, ResolvePrice(50.0, pct, true))
	assert.Equal(t, 50.0, ResolvePrice(50.0, pct, false))

	assert.Equal(t, 0.0, ResolvePrice(50.0, Benefit{Kind: BenefitFree}, true))
	assert.Equal(t, 50.0, ResolvePrice(50.0, Benefit{Kind: BenefitFree}, false))

	assert.Equal(t, 50.0, ResolvePrice(50.0, Benefit{Kind: BenefitNone}, true))
}

func TestResolvePriceNeverNegative(t *testing.T) {
	over := Benefit{Kind: BenefitPercentage, Percent: 150}
	assert.Equal(t, 0.0, ResolvePrice(30.0, over, true))
}

func TestValidOn(t *testing.T) {
	loc := time.UTC
	sub := &models.Subscription{
		Active:    true,
		StartDate: time.Date(2026, 8, 10, 15, 30, 0, 0, loc),
		EndDate:   time.Date(2026, 11, 10, 0, 0, 0, 0, loc),
		Plan: models.Plan{
			AllowedDays: models.Weekdays{1, 2, 3, 4, 5},
		},
	}

	// terça dentro da vigência
	assert.True(t, ValidOn(sub, time.Date(2026, 9, 1, 0, 0, 0, 0, loc)))

	// domingo não está nos dias do plano
	assert.False(t, ValidOn(sub, time.Date(2026, 9, 6, 0, 0, 0, 0, loc)))

	// o próprio dia de início vale, mesmo com hora de início no meio do dia
	assert.True(t, ValidOn(sub, time.Date(2026, 8, 10, 0, 0, 0, 0, loc)))

	// antes do início e depois do fim, não
	assert.False(t, ValidOn(sub, time.Date(2026, 8, 9, 0, 0, 0, 0, loc)))
	assert.False(t, ValidOn(sub, time.Date(2026, 11, 10, 0, 0, 0, 0, loc)))

	sub.Active = false
	assert.False(t, ValidOn(sub, time.Date(2026, 9, 1, 0, 0, 0, 0, loc)))

	assert.False(t, ValidOn(nil, time.Date(2026, 9, 1, 0, 0, 0, 0, loc)))
}
