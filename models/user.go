package models

import "time"

// User is the identity-owned account record. The booking core only reads
// display and contact fields; account management lives elsewhere.
type User struct {
	ID         string    `bson:"id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	ProfilePic string    `bson:"profile_pic,omitempty" json:"profilePic,omitempty"`
	Role       string    `bson:"role" json:"role"` // "customer" or "provider"
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}
