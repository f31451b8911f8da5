package db

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const NO_SINGLE_DOCUMENT = "mongo: no documents in result"

var Ctx = context.TODO()

type MongoConn struct {
	host   string
	dbName string

	once   sync.Once
	client *mongo.Client
}

func (conn *MongoConn) uri() string {
	if settingsData.MONGO_ROOT_USERNAME == "" {
		return fmt.Sprintf("%s://%s", settingsData.MONGO_CONNECTION, conn.host)
	}
	return fmt.Sprintf(
		"%s://%s:%s@%s",
		settingsData.MONGO_CONNECTION,
		settingsData.MONGO_ROOT_USERNAME,
		settingsData.MONGO_ROOT_PASSWORD,
		conn.host,
	)
}

func (conn *MongoConn) connect() {
	conn.once.Do(func() {
		client, err := mongo.Connect(Ctx, options.Client().ApplyURI(conn.uri()))
		if err != nil {
			log.Fatalf("MongoDB connection error: %v", err)
		}
		ctx, cancel := context.WithTimeout(Ctx, 10*time.Second)
		defer cancel()
		if err := client.Ping(ctx, nil); err != nil {
			log.Fatalf("MongoDB ping error: %v", err)
		}
		conn.client = client
	})
}

func (conn *MongoConn) GetCollection(collectionName string) *mongo.Collection {
	conn.connect()
	return conn.client.Database(conn.dbName).Collection(collectionName)
}

func (conn *MongoConn) GetCollections() ([]string, error) {
	conn.connect()
	return conn.client.Database(conn.dbName).ListCollectionNames(Ctx, struct{}{})
}

func (conn *MongoConn) CreateCollection(
	collectionName string,
	opts *options.CreateCollectionOptions,
) error {
	conn.connect()
	return conn.client.Database(conn.dbName).CreateCollection(Ctx, collectionName, opts)
}

func NewConnection(host, dbName string) *MongoConn {
	return &MongoConn{
		host:   host,
		dbName: dbName,
	}
}
