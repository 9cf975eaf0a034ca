package staffRepo

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

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a new instance of MongoStaffRepo.
func NewMongoStaffRepo() StaffRepository {
	db := database.MongoClient.Database(database.DBName)
	repo := &MongoStaffRepo{coll: db.Collection("staff")}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("staff repo index setup failed: %v", err))
	}
	return repo
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoStaffRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoStaffRepo) Create(ctx context.Context, staff *models.StaffMember) error {
	now := time.Now()
	staff.CreatedAt = now
	staff.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, staff); err != nil {
		return fmt.Errorf("failed to create staff member: %w", err)
	}
	return nil
}

func (r *MongoStaffRepo) GetByID(ctx context.Context, id string) (*models.StaffMember, error) {
	var staff models.StaffMember
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&staff)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff member %s: %w", id, err)
	}
	return &staff, nil
}

func (r *MongoStaffRepo) GetAll(ctx context.Context) ([]models.StaffMember, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer cursor.Close(ctx)

	var staff []models.StaffMember
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("failed to decode staff list: %w", err)
	}
	return staff, nil
}

func (r *MongoStaffRepo) UpdateWorkingHours(ctx context.Context, staffID string, entries []models.WorkingHoursEntry) error {
	update := bson.M{
		"$set": bson.M{
			"workingHours": entries,
			"updated_at":   time.Now(),
		},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": staffID}, update)
	if err != nil {
		return fmt.Errorf("failed to update working hours for %s: %w", staffID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoStaffRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete staff member %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
