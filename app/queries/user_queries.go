package queries

import (
	"context"

	"github.com/fotoflo/cloudhunter/app/models"
	"github.com/fotoflo/cloudhunter/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
)

// UserQueries resolves user identity documents.
type UserQueries struct {
	store *database.Store
}

func NewUserQueries(store *database.Store) *UserQueries {
	return &UserQueries{store: store}
}

// Get loads the user document by id.
func (q *UserQueries) Get(ctx context.Context, id string) (models.User, error) {
	user := models.User{}
	err := q.store.Collection("user").
		FindOne(ctx, bson.M{"id": id}).
		Decode(&user)
	return user, err
}
