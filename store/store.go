package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adamswinfred36-debug/Backend-MLST/models"
)

// Store wraps the Mongo client and the application's collections. It is
// created once in main and passed explicitly to every handler; there is no
// package-level connection state.
type Store struct {
	client *mongo.Client

	Users    *mongo.Collection
	Admins   *mongo.Collection
	Products *mongo.Collection
	Orders   *mongo.Collection
	Settings *mongo.Collection
}

// Connect dials MongoDB, verifies the connection with a ping and ensures the
// unique indexes the data model relies on.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(20*time.Second).
		SetSocketTimeout(20*time.Second))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	db := client.Database(dbName)
	s := &Store{
		client:   client,
		Users:    db.Collection("users"),
		Admins:   db.Collection("admins"),
		Products: db.Collection("products"),
		Orders:   db.Collection("orders"),
		Settings: db.Collection("settings"),
	}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := s.Users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "cpf", Value: 1}}},
		{Keys: bson.D{{Key: "active", Value: 1}}},
	})
	if err != nil {
		return err
	}
	_, err = s.Admins.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}}, Options: unique,
	})
	if err != nil {
		return err
	}
	_, err = s.Products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique,
	})
	if err != nil {
		return err
	}
	_, err = s.Orders.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	return err
}

// Ping reports whether the database is reachable. Used by the health endpoint.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects the underlying client. Call on shutdown.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// ErrNotFound is returned by the finder helpers when no document matches.
var ErrNotFound = errors.New("store: not found")

// FindActiveUserByID fetches a customer that has not been deactivated.
// The auth middleware calls this on every protected request, so a revoked
// account invalidates its outstanding tokens without a blacklist.
func (s *Store) FindActiveUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.Users.FindOne(ctx, bson.M{"_id": id, "active": true}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) FindActiveAdminByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	var admin models.Admin
	err := s.Admins.FindOne(ctx, bson.M{"_id": id, "active": true}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetOrCreateSettings returns the singleton settings document, inserting it
// with defaults on first access.
func (s *Store) GetOrCreateSettings(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	err := s.Settings.FindOne(ctx, bson.M{}).Decode(&settings)
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	now := time.Now()
	settings = models.Settings{
		PixTxidDefault: models.DefaultPixTxid,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	res, err := s.Settings.InsertOne(ctx, settings)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		settings.ID = oid
	}
	return &settings, nil
}

// IsDuplicateKey reports whether err is a unique-index violation, surfaced to
// callers as a 400 conflict.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
