package models

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is one slot row. A visit that spans more than one slot creates
// one row per slot, all sharing the same VisitID, client, barber and date.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarbershopID uint      `json:"barbershop_id"`
	VisitID      uuid.UUID `gorm:"type:uuid;index" json:"visit_id"`

	BarberID uint   `gorm:"index:idx_appt_barber_date" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	Date string `gorm:"size:10;index:idx_appt_barber_date" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	// Minutes this row occupies on the grid. Expanded rows carry the slot
	// granularity; legacy rows may carry 0 and fall back to it.
	DurationMin int `json:"duration_min"`

	Status string `gorm:"size:20;default:'pendente'" json:"status"`

	// Visit-level aggregates, repeated on every row of the visit.
	TotalDurationMin int     `json:"total_duration_min"`
	TotalPrice       float64 `json:"total_price"`
	FullPrice        float64 `json:"full_price"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VisitService is a service rendered in one visit, priced at booking time.
type VisitService struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	VisitID uuid.UUID `gorm:"type:uuid;index" json:"visit_id"`

	ServiceID   uint    `json:"service_id"`
	Name        string  `gorm:"size:100" json:"name"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
	FinalPrice  float64 `json:"final_price"`

	CreatedAt time.Time `json:"created_at"`
}

// VisitProduct is a retail product sold during one visit.
type VisitProduct struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	VisitID uuid.UUID `gorm:"type:uuid;index" json:"visit_id"`

	ProductID  uint    `json:"product_id"`
	Name       string  `gorm:"size:100" json:"name"`
	Quantity   int     `gorm:"default:1" json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	FinalPrice float64 `json:"final_price"`

	CreatedAt time.Time `json:"created_at"`
}
