package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the handle to the document database. Construct it once at
// process start and pass it down, there is no package-level client.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	root   string
}

// Connect opens the MongoDB connection and verifies it with a ping.
// rootPath prefixes every collection name, e.g. "auth_store.session".
func Connect(uri, dbName, rootPath string) (*Store, error) {
	clientOptions := options.Client().ApplyURI(uri)

	// Set a context to avoid long blocking
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &Store{
		client: client,
		db:     client.Database(dbName),
		root:   rootPath,
	}, nil
}

// Collection returns the named collection under the configured root path.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(s.root + "." + name)
}

// Ping checks the connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects the client.
func (s *Store) Close() error {
	return s.client.Disconnect(context.Background())
}
