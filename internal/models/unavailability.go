package models

import "time"

// UnavailabilityBlock is a barber-specific exclusion for part of one day
// (day off, errand, walk-in held outside the system).
type UnavailabilityBlock struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `json:"barbershop_id"`
	BarberID     uint `gorm:"index:idx_block_barber_date" json:"barber_id"`

	Date      string `gorm:"size:10;index:idx_block_barber_date" json:"date"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Reason    string `gorm:"size:100" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
