package db

import (
	"context"
	"fmt"

	"github.com/sdupi-network/sdupi-token-core/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
)

// ReplaceAccounts overwrites the accounts collection with the given
// snapshot. Accounts absent from the snapshot are removed so the
// collection always mirrors the in-memory ledger exactly.
func (db *Database) ReplaceAccounts(ctx context.Context, accounts []*model.AccountDocument) error {
	collection := db.collection(model.AccountCollection)

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear accounts: %w", err)
	}
	if len(accounts) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(accounts))
	for _, account := range accounts {
		docs = append(docs, account)
	}
	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert accounts: %w", err)
	}
	return nil
}

func (db *Database) GetAccounts(ctx context.Context) ([]*model.AccountDocument, error) {
	cursor, err := db.collection(model.AccountCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	defer cursor.Close(ctx)

	var accounts []*model.AccountDocument
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, fmt.Errorf("failed to decode accounts: %w", err)
	}
	return accounts, nil
}
