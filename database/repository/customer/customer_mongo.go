package customerRepo

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

// MongoCustomerRepo implements CustomerRepository using MongoDB.
type MongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo constructs a new instance of MongoCustomerRepo.
func NewMongoCustomerRepo() CustomerRepository {
	db := database.MongoClient.Database(database.DBName)
	repo := &MongoCustomerRepo{coll: db.Collection("customers")}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("customer repo index setup failed: %v", err))
	}
	return repo
}

func (r *MongoCustomerRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoCustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, customer); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *MongoCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer %s: %w", id, err)
	}
	return &customer, nil
}
