package queries

import (
	"context"
	"time"

	"github.com/fotoflo/cloudhunter/app/models"
	"github.com/fotoflo/cloudhunter/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SessionQueries is the read/delete adapter over the session collection.
// Sessions are created by the external session layer, never here.
type SessionQueries struct {
	store *database.Store
}

func NewSessionQueries(store *database.Store) *SessionQueries {
	return &SessionQueries{store: store}
}

// Get loads one session by its token.
func (q *SessionQueries) Get(ctx context.Context, sessionToken string) (models.Session, error) {
	session := models.Session{}
	err := q.store.Collection("session").
		FindOne(ctx, bson.M{"sessionToken": sessionToken}).
		Decode(&session)
	return session, err
}

// FindExpired returns up to limit sessions whose expires is before now.
// Single page, no continuation.
func (q *SessionQueries) FindExpired(ctx context.Context, now time.Time, limit int64) ([]models.Session, error) {
	opts := options.Find().SetLimit(limit)
	cursor, err := q.store.Collection("session").
		Find(ctx, bson.M{"expires": bson.M{"$lt": now}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Delete removes the session keyed by its token.
func (q *SessionQueries) Delete(ctx context.Context, sessionToken string) error {
	_, err := q.store.Collection("session").
		DeleteOne(ctx, bson.M{"sessionToken": sessionToken})
	return err
}
