package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore implements Store on a MongoDB database, one Mongo collection per
// store collection. The generated id is used as the Mongo _id (hex ObjectID
// string) so lookups by id hit the default index.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (m *MongoStore) NewID(collection string) string {
	return primitive.NewObjectID().Hex()
}

func (m *MongoStore) Set(ctx context.Context, collection, id string, doc Document) error {
	rec := bson.M{}
	for k, v := range doc {
		rec[k] = v
	}
	rec["_id"] = id
	opts := options.Replace().SetUpsert(true)
	_, err := m.db.Collection(collection).ReplaceOne(ctx, bson.M{"_id": id}, rec, opts)
	return err
}

func (m *MongoStore) Get(ctx context.Context, collection, id string) (Document, error) {
	var rec bson.M
	err := m.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return fromBSON(rec), nil
}

func (m *MongoStore) All(ctx context.Context, collection string) ([]Document, error) {
	return m.find(ctx, collection, bson.M{})
}

func (m *MongoStore) Where(ctx context.Context, collection, field string, value interface{}) ([]Document, error) {
	return m.find(ctx, collection, bson.M{field: value})
}

func (m *MongoStore) find(ctx context.Context, collection string, filter bson.M) ([]Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := m.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []Document{}
	for cur.Next(ctx) {
		var rec bson.M
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		out = append(out, fromBSON(rec))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MongoStore) Ping(ctx context.Context) error {
	return m.db.Client().Ping(ctx, readpref.Primary())
}

// fromBSON drops the Mongo-internal _id; the document carries its own "id".
func fromBSON(rec bson.M) Document {
	d := Document(rec)
	delete(d, "_id")
	return d
}
