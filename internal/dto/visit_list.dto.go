package dto

import "github.com/google/uuid"

// VisitListDTO is one logical visit collapsed from its slot rows.
type VisitListDTO struct {
	VisitID    uuid.UUID `json:"visit_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Status     string    `json:"status"`
	SlotCount  int       `json:"slot_count"`
	ClientName string    `json:"client_name"`
	BarberName string    `json:"barber_name"`

	TotalDurationMin int     `json:"total_duration_min"`
	TotalPrice       float64 `json:"total_price"`
	FullPrice        float64 `json:"full_price"`
}
