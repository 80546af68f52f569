// Package mongodb persists bridge status records in server mode.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/crosshop/CrossChain-Bridger/log"
)

var (
	client   *mongo.Client
	database *mongo.Database

	collBridgeStatus *mongo.Collection

	clientCtx = context.Background()

	appIdentifier string
)

// HasClient has connected to the backing mongodb
func HasClient() bool {
	return client != nil
}

// MongoServerInit connect to mongodb and init collections
func MongoServerInit(appName, dbURL, dbName, userName, password string) {
	appIdentifier = appName

	uri := dbURL
	if userName != "" || password != "" {
		uri = fmt.Sprintf("mongodb://%v:%v@%v/%v", userName, password, dbURL, dbName)
	} else if len(uri) < 10 || uri[:10] != "mongodb://" {
		uri = "mongodb://" + uri
	}

	ctx, cancel := context.WithTimeout(clientCtx, 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(uri).SetAppName(appName)
	var err error
	client, err = mongo.Connect(ctx, clientOpts)
	if err != nil {
		log.Fatal("mongodb connect failed", "dbURL", dbURL, "dbName", dbName, "err", err)
	}
	if err = client.Ping(ctx, nil); err != nil {
		log.Fatal("mongodb ping failed", "dbURL", dbURL, "dbName", dbName, "err", err)
	}

	database = client.Database(dbName)
	initCollections()

	log.Info("mongodb init success", "dbName", dbName, "appName", appName)
}

func initCollections() {
	collBridgeStatus = database.Collection(tbBridgeStatuses)
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "state", Value: 1}}},
		{Keys: bson.D{{Key: "sender", Value: 1}, {Key: "fromChainID", Value: 1}}},
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
	}
	_, err := collBridgeStatus.Indexes().CreateMany(clientCtx, indexes)
	if err != nil {
		log.Warn("mongodb create indexes failed", "err", err)
	}
}

func mgoError(err error) error {
	if err != nil {
		return fmt.Errorf("mongodb error: %w", err)
	}
	return nil
}
