package models

import "time"

// Booking represents a customer's claim on a single provider time slot.
// Bookings are never deleted; they only move through the status lifecycle.
type Booking struct {
	ID         string        `bson:"id" json:"id"`
	CustomerID string        `bson:"customer_id" json:"customerId"`
	ProviderID string        `bson:"provider_id" json:"providerId"`
	Service    string        `bson:"service" json:"service"`
	Date       string        `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time       string        `bson:"time" json:"time"` // slot label, e.g. "09:30"
	Price      float64       `bson:"price" json:"price"`
	Status     BookingStatus `bson:"status" json:"status"`
	CreatedAt  time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updated_at" json:"updatedAt"`
}

// BookingView is a booking enriched with read-time display data about the
// counterpart. Assembled at query time, never stored.
type BookingView struct {
	Booking  `bson:",inline"`
	Customer *UserSnippet     `json:"customer,omitempty"`
	Provider *ProviderSnippet `json:"provider,omitempty"`
}

// UserSnippet carries the display fields a booking listing shows for a customer.
type UserSnippet struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ProfilePic string `json:"profilePic,omitempty"`
}

// ProviderSnippet carries the display fields a booking listing shows for a provider.
type ProviderSnippet struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ProfilePic string   `json:"profilePic,omitempty"`
	Services   []string `json:"services,omitempty"`
	Location   string   `json:"location,omitempty"`
	Charges    float64  `json:"charges,omitempty"`
}
