package repository

import (
	"context"
	"time"

	"go-gin-calendar/internal/model"
	apperrors "go-gin-calendar/pkg/app_errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const EventsCollection = "events"

type eventDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Date          string             `bson:"date"`
	Image         *string            `bson:"image,omitempty"`
	ImageAnalysis *string            `bson:"imageAnalysis,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt"`
}

func (d *eventDocument) toModel() *model.Event {
	return &model.Event{
		ID:            d.ID.Hex(),
		Title:         d.Title,
		Date:          d.Date,
		Image:         d.Image,
		ImageAnalysis: d.ImageAnalysis,
		CreatedAt:     d.CreatedAt,
	}
}

type MongoEventRepositoryImpl struct {
	collection *mongo.Collection
}

func NewMongoEventRepository(db *mongo.Database) EventRepository {
	return &MongoEventRepositoryImpl{
		collection: db.Collection(EventsCollection),
	}
}

func (r *MongoEventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	if err := validateForCreate(event); err != nil {
		return nil, err
	}

	// BSON 時間精度為毫秒
	doc := eventDocument{
		ID:            primitive.NewObjectID(),
		Title:         event.Title,
		Date:          event.Date,
		Image:         event.Image,
		ImageAnalysis: event.ImageAnalysis,
		CreatedAt:     time.Now().UTC().Truncate(time.Millisecond),
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, storageError("insert event", err)
	}
	return doc.toModel(), nil
}

func (r *MongoEventRepositoryImpl) List(ctx context.Context) ([]*model.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, storageError("find events", err)
	}
	defer cursor.Close(ctx)

	events := make([]*model.Event, 0)
	for cursor.Next(ctx) {
		var doc eventDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, storageError("decode event", err)
		}
		events = append(events, doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, storageError("iterate events", err)
	}
	return events, nil
}

func (r *MongoEventRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// 格式錯誤的 id 一定不存在
		return apperrors.ErrEventNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return storageError("delete event", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}
