package schedulerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonbook/database"
	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSchedulerRepo implements SchedulerRepository using MongoDB.
type MongoSchedulerRepo struct {
	bookingColl *mongo.Collection
}

// NewMongoSchedulerRepo constructs a new instance of MongoSchedulerRepo.
func NewMongoSchedulerRepo() SchedulerRepository {
	db := database.MongoClient.Database(database.DBName)
	repo := &MongoSchedulerRepo{bookingColl: db.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("scheduler repo index setup failed: %v", err))
	}
	return repo
}

func (repo *MongoSchedulerRepo) GetActiveBookings(ctx context.Context, staffMemberID, date string) ([]models.Booking, error) {
	filter := bson.M{
		"staff_member_id": staffMemberID,
		"date":            date,
		"status":          bson.M{"$nin": models.InactiveStatuses},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := repo.bookingColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for %s on %s: %w", staffMemberID, date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (repo *MongoSchedulerRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := repo.bookingColl.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

func (repo *MongoSchedulerRepo) ListForCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "start", Value: -1}})
	cursor, err := repo.bookingColl.Find(ctx, bson.M{"customer_id": customerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for customer %s: %w", customerID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (repo *MongoSchedulerRepo) UpdateStatus(ctx context.Context, id, expectedCurrent, next string) error {
	filter := bson.M{"id": id, "status": expectedCurrent}
	update := bson.M{"$set": bson.M{"status": next, "updated_at": time.Now()}}
	res, err := repo.bookingColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update booking %s status: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *MongoSchedulerRepo) MarkElapsedPendingNoShow(ctx context.Context, today string, nowClock int) (int64, error) {
	filter := bson.M{
		"status": models.StatusPending,
		"$or": bson.A{
			bson.M{"date": bson.M{"$lt": today}},
			bson.M{"date": today, "end": bson.M{"$lte": nowClock}},
		},
	}
	update := bson.M{"$set": bson.M{"status": models.StatusNoShow, "updated_at": time.Now()}}
	res, err := repo.bookingColl.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to mark elapsed pending bookings no-show: %w", err)
	}
	return res.ModifiedCount, nil
}
