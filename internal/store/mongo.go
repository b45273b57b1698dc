package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoStore struct {
	db *mongo.Database
}

// NewMongoStore wraps a connected mongo database in the Store interface.
func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{db: db}
}

func (s *mongoStore) Insert(ctx context.Context, collection string, doc any) error {
	_, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("store: failed to insert into %s: %w", collection, err)
	}
	return nil
}

func (s *mongoStore) FindOne(ctx context.Context, collection string, filter Filter, out any) error {
	err := s.db.Collection(collection).FindOne(ctx, toBson(filter)).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("store: failed to find one in %s: %w", collection, err)
	}
	return nil
}

func (s *mongoStore) Find(ctx context.Context, collection string, filter Filter, opts FindOptions, out any) error {
	findOpts := options.Find()
	if opts.Sort != "" {
		dir := 1
		if opts.Desc {
			dir = -1
		}
		findOpts.SetSort(bson.D{{Key: opts.Sort, Value: dir}})
	}
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, toBson(filter), findOpts)
	if err != nil {
		return fmt.Errorf("store: failed to query %s: %w", collection, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("store: failed to decode documents from %s: %w", collection, err)
	}
	return nil
}

func (s *mongoStore) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	n, err := s.db.Collection(collection).CountDocuments(ctx, toBson(filter))
	if err != nil {
		return 0, fmt.Errorf("store: failed to count %s: %w", collection, err)
	}
	return n, nil
}

func (s *mongoStore) Update(ctx context.Context, collection string, filter Filter, set map[string]any) error {
	_, err := s.db.Collection(collection).UpdateOne(ctx, toBson(filter), bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("store: failed to update %s: %w", collection, err)
	}
	return nil
}

func (s *mongoStore) FindOneAndUpdate(ctx context.Context, collection string, filter Filter, patch Patch, out any) error {
	update := bson.M{}
	if len(patch.Set) > 0 {
		update["$set"] = patch.Set
	}
	if len(patch.Inc) > 0 {
		update["$inc"] = patch.Inc
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.db.Collection(collection).FindOneAndUpdate(ctx, toBson(filter), update, opts).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("store: failed to update and fetch in %s: %w", collection, err)
	}
	return nil
}

func (s *mongoStore) Delete(ctx context.Context, collection string, filter Filter) (int64, error) {
	res, err := s.db.Collection(collection).DeleteOne(ctx, toBson(filter))
	if err != nil {
		return 0, fmt.Errorf("store: failed to delete from %s: %w", collection, err)
	}
	return res.DeletedCount, nil
}

func (s *mongoStore) DeleteMany(ctx context.Context, collection string, filter Filter) (int64, error) {
	res, err := s.db.Collection(collection).DeleteMany(ctx, toBson(filter))
	if err != nil {
		return 0, fmt.Errorf("store: failed to bulk delete from %s: %w", collection, err)
	}
	return res.DeletedCount, nil
}

func (s *mongoStore) Increment(ctx context.Context, collection string, filter Filter, field string, delta int64) error {
	_, err := s.db.Collection(collection).UpdateOne(ctx, toBson(filter), bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return fmt.Errorf("store: failed to increment %s.%s: %w", collection, field, err)
	}
	return nil
}

// toBson translates a Filter into the driver's query representation.
func toBson(f Filter) bson.M {
	q := bson.M{}
	for field, cond := range f {
		switch c := cond.(type) {
		case Range:
			r := bson.M{}
			if c.Gte != nil {
				r["$gte"] = c.Gte
			}
			if c.Lte != nil {
				r["$lte"] = c.Lte
			}
			q[field] = r
		case Contains:
			q[field] = primitive.Regex{Pattern: regexp.QuoteMeta(string(c)), Options: "i"}
		case In:
			q[field] = bson.M{"$in": []string(c)}
		case Or:
			sub := make([]bson.M, 0, len(c))
			for _, alt := range c {
				sub = append(sub, toBson(alt))
			}
			q["$or"] = sub
		default:
			q[field] = cond
		}
	}
	return q
}
