package queries

import (
	"context"
	"time"

	"github.com/fotoflo/cloudhunter/app/models"
	"github.com/fotoflo/cloudhunter/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CustomTokenTTL is how long a minted token stays usable after write.
const CustomTokenTTL = 3600 * time.Second

// TokenCache reads and writes the per-session custom token records.
type TokenCache struct {
	store *database.Store
}

func NewTokenCache(store *database.Store) *TokenCache {
	return &TokenCache{store: store}
}

// Read returns the cached token for the session, or "" when no record
// exists or the record is past its expiry. Expiry is enforced here at
// read time, stale documents are left in place.
func (q *TokenCache) Read(ctx context.Context, sessionToken string) (string, error) {
	record := models.CustomToken{}
	err := q.store.Collection("customToken").
		FindOne(ctx, bson.M{"sessionToken": sessionToken}).
		Decode(&record)
	if err == mongo.ErrNoDocuments {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if !record.Usable(time.Now()) {
		return "", nil
	}
	return record.Token, nil
}

// Write upserts the record with a fresh TTL and returns the token
// unchanged so calls can be chained.
func (q *TokenCache) Write(ctx context.Context, sessionToken, token string) (string, error) {
	record := newTokenRecord(sessionToken, token, time.Now())
	opts := options.Replace().SetUpsert(true)
	_, err := q.store.Collection("customToken").
		ReplaceOne(ctx, bson.M{"sessionToken": sessionToken}, record, opts)
	if err != nil {
		return "", err
	}
	return token, nil
}

// newTokenRecord stamps the TTL at write time.
func newTokenRecord(sessionToken, token string, now time.Time) models.CustomToken {
	return models.CustomToken{
		SessionToken: sessionToken,
		Token:        token,
		Expires:      now.Add(CustomTokenTTL),
	}
}
