package models

import "time"

// OperatingHours is the shop-wide booking window for one weekday.
type OperatingHours struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"index:idx_shop_weekday,unique" json:"barbershop_id"`

	Weekday int `gorm:"index:idx_shop_weekday,unique" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
