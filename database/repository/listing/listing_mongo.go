package listingRepo

import (
	"context"
	"fmt"
	"time"

	"homeshow/config"
	"homeshow/database"
	"homeshow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoListingRepo implements ListingRepository using MongoDB.
type MongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo creates a new instance of ListingRepository using MongoDB.
func NewMongoListingRepo() ListingRepository {
	coll := database.MongoClient.Database("homeshow").Collection(config.AppConfig.ListingsCollection)
	repo := &MongoListingRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		// Index creation failure is not fatal; queries still work, just slower.
		fmt.Printf("listing repo: failed to ensure indexes: %v\n", err)
	}
	return repo
}

func (r *MongoListingRepo) GetByID(id string) (*models.Listing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var listing models.Listing
	filter := bson.M{"listing_id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&listing); err != nil {
		return nil, fmt.Errorf("failed to fetch listing with id %s: %w", id, err)
	}
	return &listing, nil
}

func (r *MongoListingRepo) Search(criteria ListingSearchCriteria) ([]models.Listing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if criteria.City != "" {
		filter["city"] = criteria.City
	}
	if criteria.PropertyType != "" {
		filter["property_type"] = criteria.PropertyType
	}
	if criteria.MinSquareFeet > 0 {
		filter["square_feet"] = bson.M{"$gte": criteria.MinSquareFeet}
	}
	if criteria.MinPrice > 0 || criteria.MaxPrice > 0 {
		price := bson.M{}
		if criteria.MinPrice > 0 {
			price["$gte"] = criteria.MinPrice
		}
		if criteria.MaxPrice > 0 {
			price["$lte"] = criteria.MaxPrice
		}
		filter["price"] = price
	}
	if criteria.MinBedrooms > 0 {
		filter["bedrooms"] = bson.M{"$gte": criteria.MinBedrooms}
	}
	if criteria.MinBathrooms > 0 {
		filter["bathrooms"] = bson.M{"$gte": criteria.MinBathrooms}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing search failed: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	for cursor.Next(ctx) {
		var l models.Listing
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to decode listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, nil
}

func (r *MongoListingRepo) Upsert(listing models.Listing) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"listing_id": listing.ListingID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, listing, opts); err != nil {
		return fmt.Errorf("failed to upsert listing %s: %w", listing.ListingID, err)
	}
	return nil
}

// ensureIndexes creates indexes for the fields the search filter uses.
func (r *MongoListingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "listing_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{
			{Key: "city", Value: 1},
			{Key: "property_type", Value: 1},
			{Key: "price", Value: 1},
		}},
		{Keys: bson.D{{Key: "bedrooms", Value: 1}}},
		{Keys: bson.D{{Key: "square_feet", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
