package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

const notificationCollection = "notifications"

type MongoNotificationRepository struct {
	coll *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *MongoNotificationRepository {
	return &MongoNotificationRepository{coll: db.Collection(notificationCollection)}
}

type mongoNotification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Message   string             `bson:"message"`
	Read      bool               `bson:"read"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *MongoNotificationRepository) FindByID(ctx context.Context, id string) (*domain.Notification, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotificationNotFound
	}

	var mn mongoNotification
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mn); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("find notification: %w", err)
	}

	return &domain.Notification{
		ID:        mn.ID.Hex(),
		UserID:    mn.UserID,
		Message:   mn.Message,
		Read:      mn.Read,
		CreatedAt: unixToTime(mn.CreatedAt),
	}, nil
}

func (r *MongoNotificationRepository) MarkRead(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotificationNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
