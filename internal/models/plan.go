package models

import "time"

type Plan struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `json:"barbershop_id"`

	Name           string  `gorm:"size:100;not null" json:"name"`
	Description    string  `gorm:"size:255" json:"description"`
	Price          float64 `json:"price"`
	DurationMonths int     `gorm:"default:1" json:"duration_months"`

	// Weekdays on which subscription benefits may be used.
	AllowedDays Weekdays `gorm:"type:text" json:"allowed_days"`

	// 0 means no cap. The cap is informational, not a hard block.
	MaxBenefitsPerMonth int  `gorm:"default:0" json:"max_benefits_per_month"`
	Active              bool `gorm:"default:true" json:"active"`

	Benefits []PlanBenefit `gorm:"foreignKey:PlanID" json:"benefits"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PlanBenefit struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	PlanID uint `gorm:"index" json:"plan_id"`

	// "service" or "product"
	ItemType string `gorm:"size:10;not null" json:"item_type"`
	ItemID   uint   `json:"item_id"`

	// "free" or "percentage"
	BenefitType string  `gorm:"size:10;not null" json:"benefit_type"`
	Percent     float64 `json:"percent"`

	CreatedAt time.Time `json:"created_at"`
}

type Subscription struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `json:"barbershop_id"`

	ClientID uint   `gorm:"index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	PlanID uint `json:"plan_id"`
	Plan   Plan `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"plan"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	// Price actually charged for the first cycle (pro-rated when the
	// subscription starts mid-cycle).
	FirstCyclePrice float64 `json:"first_cycle_price"`

	Active      bool       `gorm:"default:true" json:"active"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
