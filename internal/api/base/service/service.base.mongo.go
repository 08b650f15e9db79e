// Package basesvc provides the generic MongoDB service the domain stores build on.
package basesvc

import (
	"context"
	"errors"

	"github.com/anurag2169/RiseStream-backend/internal/common"
	"github.com/anurag2169/RiseStream-backend/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpdateData is a partial update built from MongoDB operators.
type UpdateData struct {
	Set      map[string]interface{} `bson:"$set,omitempty"`
	Unset    map[string]interface{} `bson:"$unset,omitempty"`
	Push     map[string]interface{} `bson:"$push,omitempty"`
	AddToSet map[string]interface{} `bson:"$addToSet,omitempty"`
	Pull     map[string]interface{} `bson:"$pull,omitempty"`
}

// withUpdatedAt stamps updatedAt on every update.
func (u UpdateData) withUpdatedAt() UpdateData {
	set := make(map[string]interface{}, len(u.Set)+1)
	for k, v := range u.Set {
		set[k] = v
	}
	set["updatedAt"] = utility.Now()
	u.Set = set
	return u
}

// BaseServiceMongo lists the operations every collection service offers.
type BaseServiceMongo[Model any] interface {
	InsertOne(ctx context.Context, data Model) (Model, error)
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (Model, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]Model, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (Model, error)
	FindOneAndUpdate(ctx context.Context, filter interface{}, update UpdateData) (Model, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, update UpdateData) (Model, error)
	DeleteOne(ctx context.Context, filter interface{}) (int64, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
	Aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error
	Toggle(ctx context.Context, filter bson.M, data Model) (bool, error)
}

// BaseServiceMongoImpl implements BaseServiceMongo on one collection.
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection
}

// NewBaseServiceMongo creates a service bound to collection.
func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{collection: collection}
}

// Collection returns the underlying collection.
func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// InsertOne stamps createdAt/updatedAt, inserts data and returns the stored document.
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	doc, err := utility.ToMap(data)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	now := utility.Now()
	doc["createdAt"] = now
	doc["updatedAt"] = now

	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	var created T
	if err := s.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return created, nil
}

// FindOne returns common.ErrNotFound when nothing matches.
func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var zero T
	if opts == nil {
		opts = options.FindOne()
	}
	var result T
	if err := s.collection.FindOne(ctx, filter, opts).Decode(&result); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return result, nil
}

// Find returns an empty slice, never nil, when nothing matches.
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	if opts == nil {
		opts = options.Find()
	}
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

func (s *BaseServiceMongoImpl[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

// FindOneAndUpdate applies update to the first match and returns the updated document.
func (s *BaseServiceMongoImpl[T]) FindOneAndUpdate(ctx context.Context, filter interface{}, update UpdateData) (T, error) {
	var zero T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var result T
	if err := s.collection.FindOneAndUpdate(ctx, filter, update.withUpdatedAt(), opts).Decode(&result); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return result, nil
}

func (s *BaseServiceMongoImpl[T]) UpdateById(ctx context.Context, id primitive.ObjectID, update UpdateData) (T, error) {
	return s.FindOneAndUpdate(ctx, bson.M{"_id": id}, update)
}

// DeleteOne returns the number of deleted documents.
func (s *BaseServiceMongoImpl[T]) DeleteOne(ctx context.Context, filter interface{}) (int64, error) {
	result, err := s.collection.DeleteOne(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}

// DeleteById returns common.ErrNotFound when the document does not exist.
func (s *BaseServiceMongoImpl[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

func (s *BaseServiceMongoImpl[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return count > 0, nil
}

// Aggregate runs pipeline and decodes every result into out, a pointer to a slice.
func (s *BaseServiceMongoImpl[T]) Aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error {
	cursor, err := s.collection.Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		return common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// Toggle deletes the document matching filter, or inserts data when none existed.
// It reports whether the relationship exists afterwards. filter must be covered by
// a unique index so a concurrent insert fails with a duplicate key, which means
// the relationship already exists.
func (s *BaseServiceMongoImpl[T]) Toggle(ctx context.Context, filter bson.M, data T) (bool, error) {
	deleted, err := s.DeleteOne(ctx, filter)
	if err != nil {
		return false, err
	}
	if deleted > 0 {
		return false, nil
	}

	if _, err := s.InsertOne(ctx, data); err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}
