package models

import (
	"time"

	usermodels "github.com/anurag2169/RiseStream-backend/internal/api/user/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription records that subscriber follows channel. The pair is unique.
type Subscription struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Subscriber primitive.ObjectID `json:"subscriber" bson:"subscriber" index:"compound:subscriptions_pair_unique"`
	Channel    primitive.ObjectID `json:"channel" bson:"channel" index:"compound:subscriptions_pair_unique;single"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// SubscriberView is a subscription row seen from the channel.
type SubscriberView struct {
	ID         primitive.ObjectID      `json:"_id" bson:"_id"`
	Subscriber usermodels.OwnerSummary `json:"subscriber" bson:"subscriber"`
	Channel    primitive.ObjectID      `json:"channel" bson:"channel"`
	CreatedAt  time.Time               `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time               `json:"updatedAt" bson:"updatedAt"`
}

// ChannelView is a subscription row seen from the subscriber.
type ChannelView struct {
	ID         primitive.ObjectID        `json:"_id" bson:"_id"`
	Subscriber primitive.ObjectID        `json:"subscriber" bson:"subscriber"`
	Channel    usermodels.ChannelProfile `json:"channel" bson:"channel"`
	CreatedAt  time.Time                 `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time                 `json:"updatedAt" bson:"updatedAt"`
}
