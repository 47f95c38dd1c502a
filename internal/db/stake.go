package db

import (
	"context"
	"fmt"

	"github.com/sdupi-network/sdupi-token-core/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
)

// ReplaceStakes overwrites the stakes collection with the given
// snapshot of active stakes.
func (db *Database) ReplaceStakes(ctx context.Context, stakes []*model.StakeDocument) error {
	collection := db.collection(model.StakeCollection)

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear stakes: %w", err)
	}
	if len(stakes) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(stakes))
	for _, stake := range stakes {
		docs = append(docs, stake)
	}
	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert stakes: %w", err)
	}
	return nil
}

func (db *Database) GetStakes(ctx context.Context) ([]*model.StakeDocument, error) {
	cursor, err := db.collection(model.StakeCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to get stakes: %w", err)
	}
	defer cursor.Close(ctx)

	var stakes []*model.StakeDocument
	if err := cursor.All(ctx, &stakes); err != nil {
		return nil, fmt.Errorf("failed to decode stakes: %w", err)
	}
	return stakes, nil
}
