package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/sdupi-network/sdupi-token-core/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SavePool updates or inserts the singleton staking pool document.
func (db *Database) SavePool(ctx context.Context, pool *model.PoolDocument) error {
	pool.ID = model.PoolID

	filter := bson.M{"_id": model.PoolID}
	update := bson.M{"$set": pool}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.PoolCollection).UpdateOne(ctx, filter, update, opts)
	return err
}

func (db *Database) GetPool(ctx context.Context) (*model.PoolDocument, error) {
	filter := bson.M{"_id": model.PoolID}
	res := db.collection(model.PoolCollection).FindOne(ctx, filter)

	var pool model.PoolDocument
	err := res.Decode(&pool)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.PoolID,
				Message: "staking pool not found",
			}
		}
		return nil, fmt.Errorf("failed to get staking pool: %w", err)
	}

	return &pool, nil
}
