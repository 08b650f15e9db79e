package models

import (
	"testing"

	"github.com/anurag2169/RiseStream-backend/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewLikeSetsOneTarget(t *testing.T) {
	id, user := primitive.NewObjectID(), primitive.NewObjectID()
	like := NewLike(TargetComment, id, user)
	require.NotNil(t, like.Comment)
	assert.Equal(t, id, *like.Comment)
	assert.Nil(t, like.Video)
	assert.Nil(t, like.Tweet)
	assert.Equal(t, user, like.LikedBy)
}

func TestLikeIndexes(t *testing.T) {
	byName := map[string]bson.D{}
	unique := map[string]bool{}
	partial := map[string]interface{}{}
	for _, m := range database.IndexModels(Like{}) {
		name := *m.Options.Name
		byName[name] = m.Keys.(bson.D)
		unique[name] = m.Options.Unique != nil && *m.Options.Unique
		partial[name] = m.Options.PartialFilterExpression
	}

	assert.Equal(t, bson.D{{Key: "video", Value: 1}, {Key: "likedBy", Value: 1}}, byName["likes_video_unique"])
	assert.Equal(t, bson.D{{Key: "comment", Value: 1}, {Key: "likedBy", Value: 1}}, byName["likes_comment_unique"])
	assert.Equal(t, bson.D{{Key: "tweet", Value: 1}, {Key: "likedBy", Value: 1}}, byName["likes_tweet_unique"])
	for _, name := range []string{"likes_video_unique", "likes_comment_unique", "likes_tweet_unique"} {
		assert.True(t, unique[name], name)
	}
	assert.Equal(t, bson.M{"video": bson.M{"$exists": true}}, partial["likes_video_unique"])
}
