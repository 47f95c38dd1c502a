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

// AppendOperation inserts one journal entry. Entries are immutable;
// re-inserting an existing operation id is a DuplicateKeyError.
func (db *Database) AppendOperation(ctx context.Context, op *model.OperationDocument) error {
	_, err := db.collection(model.OperationCollection).InsertOne(ctx, op)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     op.ID,
						Message: "operation already journaled",
					}
				}
			}
		}
		return fmt.Errorf("failed to append operation: %w", err)
	}
	return nil
}

// GetRecentOperations returns the newest journal entries, newest first.
func (db *Database) GetRecentOperations(ctx context.Context, limit int64) ([]*model.OperationDocument, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := db.collection(model.OperationCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent operations: %w", err)
	}
	defer cursor.Close(ctx)

	var ops []*model.OperationDocument
	if err := cursor.All(ctx, &ops); err != nil {
		return nil, fmt.Errorf("failed to decode operations: %w", err)
	}
	return ops, nil
}
