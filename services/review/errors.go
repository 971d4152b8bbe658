package review

import "errors"

// ErrNotAllowed means the customer has no completed booking with the provider
// and therefore may not review them. Checked before any write.
var ErrNotAllowed = errors.New("customer has no completed booking with this provider")

// ErrNotFound means the referenced provider does not exist.
var ErrNotFound = errors.New("provider not found")

// ErrInvalidRating means the rating is outside the integer range [1,5] or the
// comment is too long.
var ErrInvalidRating = errors.New("rating must be an integer between 1 and 5")
