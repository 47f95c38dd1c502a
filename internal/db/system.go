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

// SaveSystemState updates or inserts the singleton system state document.
func (db *Database) SaveSystemState(ctx context.Context, state *model.SystemStateDocument) error {
	state.ID = model.SystemStateID

	filter := bson.M{"_id": model.SystemStateID}
	update := bson.M{"$set": state}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.SystemStateCollection).UpdateOne(ctx, filter, update, opts)
	return err
}

// GetSystemState returns the persisted system state. A NotFoundError
// means the database has never been bootstrapped.
func (db *Database) GetSystemState(ctx context.Context) (*model.SystemStateDocument, error) {
	filter := bson.M{"_id": model.SystemStateID}
	res := db.collection(model.SystemStateCollection).FindOne(ctx, filter)

	var state model.SystemStateDocument
	err := res.Decode(&state)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.SystemStateID,
				Message: "system state not found",
			}
		}
		return nil, fmt.Errorf("failed to get system state: %w", err)
	}

	return &state, nil
}
