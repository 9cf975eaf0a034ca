package models

import "time"

// Service is one entry in the salon's catalogue.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Price           float64   `bson:"price" json:"price"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// Customer is a client of the salon. Only the contact fields matter to the
// booking flow; everything else lives with the CRM screens.
type Customer struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
