package schedulerRepo

import (
	"context"
	"fmt"

	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateBookingIfFree re-runs the overlap check against the live state of the
// bookings collection and inserts the record, all inside a single Mongo
// transaction. Two concurrent attempts at overlapping intervals serialize
// here: exactly one insert wins, the other sees the winner's row and gets
// ErrSlotTaken.
func (repo *MongoSchedulerRepo) CreateBookingIfFree(ctx context.Context, booking *models.Booking) error {
	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		// Half-open overlap: [a,b) conflicts with [c,d) iff a < d && c < b.
		conflictFilter := bson.M{
			"staff_member_id": booking.StaffMemberID,
			"date":            booking.Date,
			"status":          bson.M{"$nin": models.InactiveStatuses},
			"start":           bson.M{"$lt": booking.End},
			"end":             bson.M{"$gt": booking.Start},
		}
		n, err := repo.bookingColl.CountDocuments(sc, conflictFilter)
		if err != nil {
			return fmt.Errorf("conflict check failed: %w", err)
		}
		if n > 0 {
			return ErrSlotTaken
		}

		if _, err := repo.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}
