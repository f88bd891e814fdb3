// Package database provides the optional MongoDB connection opened by the
// loader when a connection URI is configured.
package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/igecorp/igego/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 5 * time.Second

// DefaultName is used when no database name is configured.
const DefaultName = "ige"

// Database manages the MongoDB connection
type Database struct {
	client      *mongo.Client
	db          *mongo.Database
	collections map[string]*mongo.Collection
	mu          sync.RWMutex
}

// Connect establishes a connection to MongoDB and verifies it with a ping.
// There is no retry: the first failure is returned.
func Connect(ctx context.Context, mongoURI, dbName string) (*Database, error) {
	if dbName == "" {
		dbName = DefaultName
	}

	logger.System("Connecting to MongoDB...", "DB")

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(mongoURI).
		SetServerSelectionTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	logger.Success("Connected to MongoDB database.", "DB")

	return &Database{
		client:      client,
		db:          client.Database(dbName),
		collections: make(map[string]*mongo.Collection),
	}, nil
}

// Disconnect closes the database connection
func (d *Database) Disconnect() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := d.client.Disconnect(ctx); err != nil {
		return err
	}
	d.client = nil
	logger.Warn("MongoDB connection closed", "DB")
	return nil
}

// Ping measures the database response time
func (d *Database) Ping(ctx context.Context) (time.Duration, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.client == nil {
		return 0, fmt.Errorf("not connected to database")
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	start := time.Now()
	err := d.client.Ping(ctx, readpref.Primary())
	return time.Since(start), err
}

// Status returns a short status label and whether the database answers.
func (d *Database) Status(ctx context.Context) (string, bool) {
	if d == nil {
		return "disabled", false
	}
	if _, err := d.Ping(ctx); err != nil {
		return "offline", false
	}
	return "online", true
}

// Collection returns a MongoDB collection
func (d *Database) Collection(name string) *mongo.Collection {
	d.mu.RLock()
	if col, exists := d.collections[name]; exists {
		d.mu.RUnlock()
		return col
	}
	d.mu.RUnlock()

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return nil
	}

	col := d.db.Collection(name)
	d.collections[name] = col
	return col
}

// Client returns the underlying MongoDB client
func (d *Database) Client() *mongo.Client {
	return d.client
}

// DB returns the underlying MongoDB database
func (d *Database) DB() *mongo.Database {
	return d.db
}
