package repomanager

import (
	"context"
	"fmt"

	"github.com/GURUTIKI/presently/internal/server/repositories/items"
	"github.com/GURUTIKI/presently/internal/server/repositories/lists"
	"github.com/GURUTIKI/presently/internal/server/repositories/users"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepositoryManager vends MongoDB-backed repositories. Init creates the
// unique username index so duplicate registrations fail inside the database.
type MongoRepositoryManager struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoRepositoryManager(dsn, database string) (*MongoRepositoryManager, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(dsn))
	if err != nil {
		return nil, fmt.Errorf("mongo connect error: %w", err)
	}
	return &MongoRepositoryManager{client: client, db: client.Database(database)}, nil
}

func (m *MongoRepositoryManager) Init(ctx context.Context) error {
	_, err := m.db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("mongo index error: %w", err)
	}
	return nil
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *MongoRepositoryManager) Users() users.Repository {
	return users.NewMongoRepository(m.db)
}

func (m *MongoRepositoryManager) Lists() lists.Repository {
	return lists.NewMongoRepository(m.db)
}

func (m *MongoRepositoryManager) Items() items.Repository {
	return items.NewMongoRepository(m.db)
}
