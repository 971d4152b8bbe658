package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"servehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for fields frequently used in queries.
//
// The partial unique index on (provider_id, date, time) is the
// no-double-booking guard: it covers only non-cancelled bookings, so a
// cancelled booking frees its slot for re-booking while the insert-time
// uniqueness check stays atomic under concurrent requests.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	activeSlotOpts := options.Index().
		SetUnique(true).
		SetPartialFilterExpression(bson.M{
			"status": bson.M{"$in": models.ActiveStatuses()},
		})
	activeSlotIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "provider_id", Value: 1},
			{Key: "date", Value: 1},
			{Key: "time", Value: 1},
		},
		Options: activeSlotOpts,
	}

	base := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "date", Value: -1}, {Key: "time", Value: -1}}},
		{Keys: bson.D{{Key: "provider_id", Value: 1}, {Key: "date", Value: -1}, {Key: "time", Value: -1}}},
		{Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "provider_id", Value: 1}, {Key: "status", Value: 1}}},
	}

	indexModels := append(base, activeSlotIdx)
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
