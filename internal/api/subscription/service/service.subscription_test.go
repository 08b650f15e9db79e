package subscriptionsvc

import (
	"context"
	"testing"

	submodels "github.com/anurag2169/RiseStream-backend/internal/api/subscription/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type pair struct{ subscriber, channel primitive.ObjectID }

type memorySubscriptionStore struct {
	rows     map[pair]bool
	pipeline mongo.Pipeline
}

func (m *memorySubscriptionStore) Toggle(_ context.Context, filter bson.M, _ submodels.Subscription) (bool, error) {
	k := pair{filter["subscriber"].(primitive.ObjectID), filter["channel"].(primitive.ObjectID)}
	if m.rows[k] {
		delete(m.rows, k)
		return false, nil
	}
	m.rows[k] = true
	return true, nil
}

func (m *memorySubscriptionStore) Aggregate(_ context.Context, p mongo.Pipeline, _ interface{}) error {
	m.pipeline = p
	return nil
}

func TestToggleSubscription(t *testing.T) {
	ctx := context.Background()
	store := &memorySubscriptionStore{rows: map[pair]bool{}}
	svc := NewSubscriptionServiceWithStore(store)
	channel, user := primitive.NewObjectID(), primitive.NewObjectID()

	on, err := svc.Toggle(ctx, channel, user)
	require.NoError(t, err)
	assert.True(t, on)
	on, err = svc.Toggle(ctx, channel, user)
	require.NoError(t, err)
	assert.False(t, on)
	assert.Empty(t, store.rows)

	_, err = svc.Toggle(ctx, user, user)
	assert.ErrorIs(t, err, ErrSelfSubscription)
}

func TestListPipelines(t *testing.T) {
	ctx := context.Background()
	store := &memorySubscriptionStore{rows: map[pair]bool{}}
	svc := NewSubscriptionServiceWithStore(store)
	channel := primitive.NewObjectID()

	rows, err := svc.ListSubscribers(ctx, channel)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Equal(t, bson.E{Key: "$match", Value: bson.D{{Key: "channel", Value: channel}}}, store.pipeline[0][0])
	assert.Equal(t, bson.E{Key: "$unwind", Value: "$subscriber"}, store.pipeline[2][0])

	channels, err := svc.ListSubscribedChannels(ctx, channel)
	require.NoError(t, err)
	assert.NotNil(t, channels)
	lookup := store.pipeline[1][0].Value.(bson.D).Map()
	project := lookup["pipeline"].(bson.A)[0].(bson.D)[0].Value.(bson.D)
	assert.Contains(t, project, bson.E{Key: "coverImage", Value: 1})
}
