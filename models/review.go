package models

import "time"

// Review is a customer's rating of a provider. One review per
// (customer, provider); re-submission updates the existing document.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	CustomerID string    `bson:"customer_id" json:"customerId"`
	ProviderID string    `bson:"provider_id" json:"providerId"`
	Rating     int       `bson:"rating" json:"rating"` // integer in [1,5]
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

// ReviewView is a review with the reviewer's display data attached at read time.
type ReviewView struct {
	Review   `bson:",inline"`
	Customer *UserSnippet `json:"customer,omitempty"`
}

// RatingSummary is the provider rating projection produced by a recompute.
type RatingSummary struct {
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
}
