package subscriptionsvc

import (
	"context"
	"fmt"

	basesvc "github.com/anurag2169/RiseStream-backend/internal/api/base/service"
	submodels "github.com/anurag2169/RiseStream-backend/internal/api/subscription/models"
	usermodels "github.com/anurag2169/RiseStream-backend/internal/api/user/models"
	"github.com/anurag2169/RiseStream-backend/internal/common"
	"github.com/anurag2169/RiseStream-backend/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrSelfSubscription = common.NewValidationError("You cannot subscribe to your own channel", nil)

type SubscriptionStore interface {
	Toggle(ctx context.Context, filter bson.M, data submodels.Subscription) (bool, error)
	Aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error
}

// SubscriptionService manages channel subscriptions.
type SubscriptionService struct {
	store SubscriptionStore
}

func NewSubscriptionService() (*SubscriptionService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, fmt.Errorf("failed to get subscriptions collection: %w", common.ErrNotFound)
	}
	return NewSubscriptionServiceWithStore(basesvc.NewBaseServiceMongo[submodels.Subscription](collection)), nil
}

func NewSubscriptionServiceWithStore(store SubscriptionStore) *SubscriptionService {
	return &SubscriptionService{store: store}
}

// Toggle subscribes subscriber to channel or cancels the subscription.
// It reports whether the subscription exists afterwards.
func (s *SubscriptionService) Toggle(ctx context.Context, channel, subscriber primitive.ObjectID) (bool, error) {
	if channel == subscriber {
		return false, ErrSelfSubscription
	}
	filter := bson.M{"subscriber": subscriber, "channel": channel}
	return s.store.Toggle(ctx, filter, submodels.Subscription{Subscriber: subscriber, Channel: channel})
}

func subscribersPipeline(channel primitive.ObjectID) mongo.Pipeline {
	pipeline := mongo.Pipeline{{{Key: "$match", Value: bson.D{{Key: "channel", Value: channel}}}}}
	return append(pipeline, usermodels.LookupProfile("subscriber", usermodels.PublicProjection())...)
}

func channelsPipeline(subscriber primitive.ObjectID) mongo.Pipeline {
	pipeline := mongo.Pipeline{{{Key: "$match", Value: bson.D{{Key: "subscriber", Value: subscriber}}}}}
	return append(pipeline, usermodels.LookupProfile("channel", usermodels.PublicProjection("coverImage"))...)
}

// ListSubscribers returns the subscribers of channel with their profiles.
func (s *SubscriptionService) ListSubscribers(ctx context.Context, channel primitive.ObjectID) ([]submodels.SubscriberView, error) {
	rows := []submodels.SubscriberView{}
	if err := s.store.Aggregate(ctx, subscribersPipeline(channel), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ListSubscribedChannels returns the channels subscriber follows.
func (s *SubscriptionService) ListSubscribedChannels(ctx context.Context, subscriber primitive.ObjectID) ([]submodels.ChannelView, error) {
	rows := []submodels.ChannelView{}
	if err := s.store.Aggregate(ctx, channelsPipeline(subscriber), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
