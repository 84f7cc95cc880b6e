package models

import "time"

type RetailProduct struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `json:"barbershop_id"`

	Name   string  `gorm:"size:100;not null" json:"name"`
	Price  float64 `json:"price"`
	Active bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
