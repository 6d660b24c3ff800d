package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore cung cấp các thao tác hàng loạt mà công cụ seed cần
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

// Clear xoá toàn bộ document của collection, trả về số document đã xoá
func (s *MongoStore) Clear(ctx context.Context, collection string) (int64, error) {
	res, err := s.db.Collection(collection).DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("xoá %s: %w", collection, err)
	}
	return res.DeletedCount, nil
}

// InsertMany chèn theo đúng thứ tự và trả về id dạng hex theo thứ tự đó
func (s *MongoStore) InsertMany(ctx context.Context, collection string, docs []any) ([]string, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	res, err := s.db.Collection(collection).InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		return nil, fmt.Errorf("chèn %s: %w", collection, err)
	}

	ids := make([]string, len(res.InsertedIDs))
	for i, raw := range res.InsertedIDs {
		oid, ok := raw.(primitive.ObjectID)
		if !ok {
			return nil, fmt.Errorf("chèn %s: id không phải ObjectID: %v", collection, raw)
		}
		ids[i] = oid.Hex()
	}
	return ids, nil
}

func (s *MongoStore) Count(ctx context.Context, collection string) (int64, error) {
	n, err := s.db.Collection(collection).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("đếm %s: %w", collection, err)
	}
	return n, nil
}
