package mongostore

import (
	"context"
	"errors"

	"brm-service/internal/app/contracts"
	"brm-service/internal/app/models"
	"brm-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type repository[T models.Entity] struct {
	collection     *mongo.Collection
	referenceField string
}

// NewRepository maps one entity kind to one collection with the entity id as
// _id. referenceField names the document field ReferenceID is stored under.
func NewRepository[T models.Entity](db *mongo.Database, collectionName, referenceField string) contracts.Repository[T] {
	return &repository[T]{
		collection:     db.Collection(collectionName),
		referenceField: referenceField,
	}
}

// EnsureIndexes creates the reference index. With unique set a non-empty
// reference may appear only once.
func EnsureIndexes(ctx context.Context, db *mongo.Database, collectionName, referenceField string, unique bool) error {
	if referenceField == "" {
		return nil
	}

	indexOptions := options.Index()
	if unique {
		indexOptions.SetUnique(true).SetPartialFilterExpression(bson.M{
			referenceField: bson.M{"$gt": ""},
		})
	}
	_, err := db.Collection(collectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: referenceField, Value: 1}},
		Options: indexOptions,
	})
	if err != nil {
		return exceptions.ErrStorageWrite(err, collectionName)
	}
	return nil
}

func (r *repository[T]) FindAll(ctx context.Context) ([]T, error) {
	return r.find(ctx, bson.M{})
}

func (r *repository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	raw, err := r.collection.FindOne(ctx, bson.M{"_id": id}).Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrStorageRead(err, r.collection.Name())
	}

	entity, err := fromDocument[T](raw)
	if err != nil {
		return nil, exceptions.ErrStorageRead(err, r.collection.Name())
	}
	return &entity, nil
}

func (r *repository[T]) FindByReference(ctx context.Context, referenceID string) ([]T, error) {
	if r.referenceField == "" {
		return []T{}, nil
	}
	return r.find(ctx, bson.M{r.referenceField: referenceID})
}

func (r *repository[T]) Insert(ctx context.Context, entity T) error {
	document, err := toDocument(entity)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	_, err = r.collection.InsertOne(ctx, document)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return contracts.ErrDuplicateRecord
		}
		return exceptions.ErrStorageWrite(err, r.collection.Name())
	}
	return nil
}

func (r *repository[T]) Replace(ctx context.Context, entity T) error {
	document, err := toDocument(entity)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": entity.GetID()}, document)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return contracts.ErrDuplicateRecord
		}
		return exceptions.ErrStorageWrite(err, r.collection.Name())
	}
	if result.MatchedCount == 0 {
		return contracts.ErrRecordNotFound
	}
	return nil
}

func (r *repository[T]) DeleteByID(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, exceptions.ErrStorageDelete(err, r.collection.Name())
	}
	return result.DeletedCount > 0, nil
}

func (r *repository[T]) DeleteByReference(ctx context.Context, referenceID string) (int, error) {
	if r.referenceField == "" {
		return 0, nil
	}
	result, err := r.collection.DeleteMany(ctx, bson.M{r.referenceField: referenceID})
	if err != nil {
		return 0, exceptions.ErrStorageDelete(err, r.collection.Name())
	}
	return int(result.DeletedCount), nil
}

func (r *repository[T]) find(ctx context.Context, filter bson.M) ([]T, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrStorageRead(err, r.collection.Name())
	}
	defer cursor.Close(ctx)

	items := []T{}
	for cursor.Next(ctx) {
		entity, err := fromDocument[T](cursor.Current)
		if err != nil {
			return nil, exceptions.ErrStorageRead(err, r.collection.Name())
		}
		items = append(items, entity)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrStorageRead(err, r.collection.Name())
	}
	return items, nil
}

// toDocument stores the entity's JSON form as the document, with the entity
// id as _id. Every field the entity carries, typed or not, is kept.
func toDocument(entity interface{}) (bson.D, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, err
	}
	var document bson.D
	if err := bson.UnmarshalExtJSON(data, false, &document); err != nil {
		return nil, err
	}
	for i := range document {
		if document[i].Key == "id" {
			document[i].Key = "_id"
		}
	}
	return document, nil
}

// fromDocument reverses toDocument through relaxed extended JSON, which
// renders bson numbers and arrays as plain JSON values.
func fromDocument[T any](raw bson.Raw) (T, error) {
	var entity T
	var document bson.D
	if err := bson.Unmarshal(raw, &document); err != nil {
		return entity, err
	}
	for i := range document {
		if document[i].Key == "_id" {
			document[i].Key = "id"
		}
	}
	data, err := bson.MarshalExtJSON(document, false, false)
	if err != nil {
		return entity, err
	}
	err = json.Unmarshal(data, &entity)
	return entity, err
}
