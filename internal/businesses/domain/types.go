package domain

import "github.com/google/uuid"

// Business is the tenant that owns bookings. The notification pipeline only reads it.
type Business struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Phone    string
	Address  string
	Settings BookingSettings
}
