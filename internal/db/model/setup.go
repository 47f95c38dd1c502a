package model

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sdupi-network/sdupi-token-core/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// namespaceExistsErrCode is returned by mongo when creating a collection
// that already exists.
const namespaceExistsErrCode = 48

var collections = []string{
	AccountCollection,
	StakeCollection,
	PoolCollection,
	SystemStateCollection,
	OperationCollection,
}

// Setup creates the collections and indexes used by the service.
// It is idempotent and safe to run on every startup.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	defer client.Disconnect(ctx) //nolint:errcheck

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	database := client.Database(cfg.DbName)

	for _, name := range collections {
		if err := createCollection(ctx, database, name); err != nil {
			return err
		}
	}

	// The journal is the only collection queried by secondary keys;
	// the snapshot collections are keyed by _id alone.
	journalIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "kind", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "caller", Value: 1}, {Key: "timestamp", Value: -1}}},
	}
	_, err = database.Collection(OperationCollection).Indexes().CreateMany(ctx, journalIndexes)
	if err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", OperationCollection, err)
	}

	return nil
}

func createCollection(ctx context.Context, database *mongo.Database, name string) error {
	err := database.CreateCollection(ctx, name)
	if err != nil {
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) && cmdErr.Code == namespaceExistsErrCode {
			return nil
		}
		return fmt.Errorf("failed to create collection %s: %w", name, err)
	}
	return nil
}
