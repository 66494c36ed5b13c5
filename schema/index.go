package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(client *mongo.Client, dbName string) *MongoDBIndexer {
	return &MongoDBIndexer{
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(ctx context.Context, collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(ctx, index)
	return err
}

func (m *MongoDBIndexer) IndexAll(ctx context.Context) error {
	return m.IndexResponseCollection(ctx)
}

func (m *MongoDBIndexer) IndexResponseCollection(ctx context.Context) error {
	return m.createIndex(ctx, ResponseCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "seq", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}
