package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"servehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TakenSlots returns the time labels of all non-cancelled bookings for a
// provider on a given date.
func (r *MongoBookingRepo) TakenSlots(ctx context.Context, providerID, date string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"provider_id": providerID,
		"date":        date,
		"status":      bson.M{"$ne": models.StatusCancelled},
	}
	opts := options.Find().SetProjection(bson.M{"time": 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching taken slots: %w", err)
	}
	defer cursor.Close(ctx)

	var taken []string
	for cursor.Next(ctx) {
		var doc struct {
			Time string `bson:"time"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding taken slot: %w", err)
		}
		taken = append(taken, doc.Time)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return taken, nil
}

func (r *MongoBookingRepo) ListByCustomer(ctx context.Context, customerID string, opts ListOptions) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"customer_id": customerID}, opts)
}

func (r *MongoBookingRepo) ListByProvider(ctx context.Context, providerID string, opts ListOptions) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"provider_id": providerID}, opts)
}

// list runs a booking listing query sorted most recent first. Limit 0 means
// no pagination.
func (r *MongoBookingRepo) list(ctx context.Context, filter bson.M, listOpts ListOptions) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{
		{Key: "date", Value: -1},
		{Key: "time", Value: -1},
	})
	if listOpts.Limit > 0 {
		page := listOpts.Page
		if page < 1 {
			page = 1
		}
		findOpts.SetSkip(int64((page - 1) * listOpts.Limit))
		findOpts.SetLimit(int64(listOpts.Limit))
	}

	cursor, err := r.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

// HasCompletedBooking reports whether the customer has at least one completed
// booking with the provider. The review gate depends on this.
func (r *MongoBookingRepo) HasCompletedBooking(ctx context.Context, customerID, providerID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"customer_id": customerID,
		"provider_id": providerID,
		"status":      models.StatusCompleted,
	}
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error checking completed bookings: %w", err)
	}
	return count > 0, nil
}
