package profilestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/pkg/ctxlogger"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	collectionProfiles    = "profiles"
	collectionUsageLogs   = "usage_logs"
	collectionGenerations = "generations"
)

type MongoStore struct {
	profiles    *mongo.Collection
	usageLogs   *mongo.Collection
	generations *mongo.Collection
}

var _ Repository = (*MongoStore)(nil)

func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	db := client.Database(dbName)
	return &MongoStore{
		profiles:    db.Collection(collectionProfiles),
		usageLogs:   db.Collection(collectionUsageLogs),
		generations: db.Collection(collectionGenerations),
	}
}

// EnsureIndexes creates the unique profile indexes and the generation listing index.
func (r MongoStore) EnsureIndexes(ctx context.Context) error {
	if _, err := r.profiles.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
	}); err != nil {
		return fmt.Errorf("failed to create profile indexes: %w", err)
	}

	if _, err := r.generations.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	}); err != nil {
		return fmt.Errorf("failed to create generation index: %w", err)
	}

	return nil
}

func (r MongoStore) findOne(ctx context.Context, filter bson.D) (domain.Profile, error) {
	var p domain.Profile
	if err := r.profiles.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			ctxlogger.GetLogger(ctx).Warn("No documents found", "filter", filter)
			return domain.Profile{}, domain.ProfileNotFound
		}
		return domain.Profile{}, err
	}
	return p, nil
}

func (r MongoStore) GetProfile(ctx context.Context, id string) (domain.Profile, error) {
	return r.findOne(ctx, bson.D{{Key: "id", Value: id}})
}

func (r MongoStore) FindByEmail(ctx context.Context, email string) (domain.Profile, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r MongoStore) CreateProfile(ctx context.Context, p domain.Profile) error {
	if _, err := r.profiles.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ProfileExists
		}
		ctxlogger.GetLogger(ctx).Error("Error on create profile", "error", err)
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r MongoStore) UpdateTier(ctx context.Context, id string, tier domain.Tier, subscriptionExpiresAt *time.Time) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "subscription_tier", Value: tier},
		{Key: "subscription_expires_at", Value: subscriptionExpiresAt},
		{Key: "updated_at", Value: time.Now().UTC()},
	}}}

	res, err := r.profiles.UpdateOne(ctx, bson.D{{Key: "id", Value: id}}, update)
	if err != nil {
		return fmt.Errorf("failed to update tier: %w", err)
	}

	if res.MatchedCount == 0 {
		return domain.ProfileNotFound
	}

	return nil
}

func (r MongoStore) IncrementUsage(ctx context.Context, id string, feature domain.Feature) (domain.Profile, error) {
	now := time.Now().UTC()
	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: feature.Counter(), Value: 1}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: now}}},
	}

	var p domain.Profile
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := r.profiles.FindOneAndUpdate(ctx, bson.D{{Key: "id", Value: id}}, update, opts).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Profile{}, domain.ProfileNotFound
		}
		return domain.Profile{}, fmt.Errorf("failed to increment usage: %w", err)
	}

	if _, err := r.usageLogs.InsertOne(ctx, domain.UsageLog{
		ID:        uuid.New(),
		UserID:    id,
		Feature:   feature,
		CreatedAt: now,
	}); err != nil {
		ctxlogger.GetLogger(ctx).Error("Error on insert usage log", "error", err, "user_id", id)
	}

	return p, nil
}

func (r MongoStore) RecordGeneration(ctx context.Context, g domain.Generation) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}

	if _, err := r.generations.InsertOne(ctx, g); err != nil {
		return fmt.Errorf("failed to record generation: %w", err)
	}
	return nil
}

func (r MongoStore) ListGenerations(ctx context.Context, userID string, limit int) ([]domain.Generation, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(listLimit(limit)))

	cursor, err := r.generations.Find(ctx, bson.D{{Key: "user_id", Value: userID}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}

	var out []domain.Generation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode generations: %w", err)
	}

	return out, nil
}
