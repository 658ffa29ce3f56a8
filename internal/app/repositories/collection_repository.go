package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/academy/internal/app/models"
	"github.com/yigit/academy/internal/pkg/apperrors"
	"github.com/yigit/academy/internal/pkg/dberrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collectionRepository implements Repository over one MongoDB collection.
type collectionRepository[T models.Document] struct {
	coll      *mongo.Collection
	notFound  error
	duplicate error
}

func newCollectionRepository[T models.Document](db *mongo.Database, name string, notFound error) *collectionRepository[T] {
	return &collectionRepository[T]{
		coll:      db.Collection(name),
		notFound:  notFound,
		duplicate: apperrors.ErrResourceAlreadyExists,
	}
}

// FindAll retrieves every document in insertion order
func (r *collectionRepository[T]) FindAll(ctx context.Context) ([]*T, error) {
	return r.find(ctx, bson.M{})
}

// FindByID retrieves a document by ID
func (r *collectionRepository[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var doc T
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, r.notFound
		}
		return nil, fmt.Errorf("error retrieving %s: %w", r.coll.Name(), err)
	}
	return &doc, nil
}

// FindByIDs retrieves the documents whose ID is in ids
func (r *collectionRepository[T]) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*T, error) {
	if len(ids) == 0 {
		return []*T{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *collectionRepository[T]) find(ctx context.Context, filter bson.M) ([]*T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying %s: %w", r.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := []*T{}
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", r.coll.Name(), err)
		}
		docs = append(docs, &doc)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", r.coll.Name(), err)
	}

	return docs, nil
}

// Create inserts a document. The caller assigns its ID.
func (r *collectionRepository[T]) Create(ctx context.Context, doc *T) error {
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return r.duplicate
		}
		return fmt.Errorf("error creating %s: %w", r.coll.Name(), err)
	}
	return nil
}

// Update sets fields on a document and returns the result
func (r *collectionRepository[T]) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*T, error) {
	update := updateDocument(fields)
	if len(update) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc T
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&doc)
	if err != nil {
		switch {
		case dberrors.IsNotFound(err):
			return nil, r.notFound
		case dberrors.IsDuplicateKeyError(err):
			return nil, r.duplicate
		}
		return nil, fmt.Errorf("error updating %s: %w", r.coll.Name(), err)
	}
	return &doc, nil
}

// Delete removes a document by ID
func (r *collectionRepository[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting %s: %w", r.coll.Name(), err)
	}
	if result.DeletedCount == 0 {
		return r.notFound
	}
	return nil
}

// EmailExists checks whether a document other than excludeID has email
func (r *collectionRepository[T]) EmailExists(ctx context.Context, email string, excludeID primitive.ObjectID) (bool, error) {
	filter := bson.M{"email": email}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error checking email in %s: %w", r.coll.Name(), err)
	}
	return count > 0, nil
}

// updateDocument splits fields into $set and $unset, nil meaning unset.
func updateDocument(fields bson.M) bson.M {
	set, unset := bson.M{}, bson.M{}
	for k, v := range fields {
		if v == nil {
			unset[k] = ""
			continue
		}
		set[k] = v
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}
