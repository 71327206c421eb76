package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store against a MongoDB database. Per-document
// atomicity comes from the server; no cross-document transactions are used.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) FindSingleton(ctx context.Context, col string) (bson.Raw, error) {
	raw, err := s.db.Collection(col).FindOne(ctx, bson.M{}).Raw()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return raw, nil
}

func (s *MongoStore) ReplaceSingleton(ctx context.Context, col string, doc interface{}) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.db.Collection(col).ReplaceOne(ctx, bson.M{}, doc, opts)
	return err
}

func (s *MongoStore) MergeSingleton(ctx context.Context, col string, set bson.M) error {
	opts := options.Update().SetUpsert(true)
	_, err := s.db.Collection(col).UpdateOne(ctx, bson.M{}, bson.M{"$set": set}, opts)
	return err
}

func (s *MongoStore) Insert(ctx context.Context, col string, doc interface{}) error {
	_, err := s.db.Collection(col).InsertOne(ctx, doc)
	return err
}

func (s *MongoStore) FindAll(ctx context.Context, col, sortKey string, descending bool) ([]bson.Raw, error) {
	dir := 1
	if descending {
		dir = -1
	}
	opts := options.Find().SetSort(bson.D{{Key: sortKey, Value: dir}})
	cur, err := s.db.Collection(col).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []bson.Raw{}
	for cur.Next(ctx) {
		// cur.Current is reused between iterations; keep a copy
		raw := make(bson.Raw, len(cur.Current))
		copy(raw, cur.Current)
		out = append(out, raw)
	}
	return out, cur.Err()
}

func (s *MongoStore) FindOneBy(ctx context.Context, col string, filter bson.M) (bson.Raw, error) {
	raw, err := s.db.Collection(col).FindOne(ctx, filter).Raw()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return raw, nil
}

func (s *MongoStore) UpdateByID(ctx context.Context, col, id string, set bson.M) error {
	res, err := s.db.Collection(col).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteByID(ctx context.Context, col, id string) (bool, error) {
	res, err := s.db.Collection(col).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
