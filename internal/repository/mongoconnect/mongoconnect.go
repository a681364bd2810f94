package mongoconnect

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DefaultDatabase = "Bookshelf"

// ConnectDB dials MongoDB using MONGODB_URI and pings it so a bad URI
// fails at startup, not on the first request. The returned client is the
// single shared handle for the process; the caller owns Disconnect.
func ConnectDB(ctx context.Context) (*mongo.Client, error) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		return nil, fmt.Errorf("MONGODB_URI not set")
	}

	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetMaxPoolSize(10).
		SetConnectTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// Database resolves the application database, honoring MONGODB_DATABASE.
func Database(client *mongo.Client) *mongo.Database {
	name := os.Getenv("MONGODB_DATABASE")
	if name == "" {
		name = DefaultDatabase
	}
	return client.Database(name)
}
