package queries

import (
	"context"

	"github.com/fotoflo/cloudhunter/app/models"
	"github.com/fotoflo/cloudhunter/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
)

// AccountQueries lists linked provider accounts. Read-only.
type AccountQueries struct {
	store *database.Store
}

func NewAccountQueries(store *database.Store) *AccountQueries {
	return &AccountQueries{store: store}
}

// List returns every account linked to the user, in store order. An empty
// provider matches all providers. No pagination, no caching.
func (q *AccountQueries) List(ctx context.Context, userID, provider string) ([]models.Account, error) {
	filter := bson.M{"userId": userID}
	if provider != "" {
		filter["provider"] = provider
	}

	cursor, err := q.store.Collection("account").Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	accounts := []models.Account{}
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}
