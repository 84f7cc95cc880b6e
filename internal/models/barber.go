package models

import "time"

type Barber struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `json:"barbershop_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`

	CommissionPercent float64 `gorm:"default:0" json:"commission_percent"`
	Active            bool    `gorm:"default:true" json:"active"`

	// Empty means the barber works every weekday.
	AvailableDays Weekdays `gorm:"type:text" json:"available_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WorksOn reports whether the barber takes bookings on the given weekday.
func (b *Barber) WorksOn(day time.Weekday) bool {
	if len(b.AvailableDays) == 0 {
		return true
	}
	return b.AvailableDays.Contains(day)
}
