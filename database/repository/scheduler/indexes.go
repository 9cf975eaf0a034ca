package schedulerRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for fields frequently used in queries. The
// unique (staff_member_id, date, start) index is a second line of defence
// behind the transactional conflict check: even if two inserts slipped past
// the check, identical start times cannot both land.
func (repo *MongoSchedulerRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dayIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "staff_member_id", Value: 1},
			{Key: "date", Value: 1},
			{Key: "start", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"status": bson.M{"$in": bson.A{"pending", "confirmed", "in-progress", "completed"}},
			}),
	}
	idIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	customerIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "date", Value: -1}},
	}

	_, err := repo.bookingColl.Indexes().CreateMany(ctx, []mongo.IndexModel{dayIdx, idIdx, customerIdx})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
