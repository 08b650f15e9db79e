package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like links a user to exactly one of a video, a comment or a tweet.
// Each target kind has its own unique partial index with likedBy, so a
// user can like a target at most once.
type Like struct {
	ID        primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	Video     *primitive.ObjectID `json:"video,omitempty" bson:"video,omitempty" index:"compound:likes_video_unique,partial"`
	Comment   *primitive.ObjectID `json:"comment,omitempty" bson:"comment,omitempty" index:"compound:likes_comment_unique,partial"`
	Tweet     *primitive.ObjectID `json:"tweet,omitempty" bson:"tweet,omitempty" index:"compound:likes_tweet_unique,partial"`
	LikedBy   primitive.ObjectID  `json:"likedBy" bson:"likedBy" index:"compound:likes_video_unique;compound:likes_comment_unique;compound:likes_tweet_unique"`
	CreatedAt time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// Target names the field a like points at.
type Target string

const (
	TargetVideo   Target = "video"
	TargetComment Target = "comment"
	TargetTweet   Target = "tweet"
)

// NewLike builds the like row of user on target id.
func NewLike(target Target, id, user primitive.ObjectID) Like {
	like := Like{LikedBy: user}
	switch target {
	case TargetVideo:
		like.Video = &id
	case TargetComment:
		like.Comment = &id
	case TargetTweet:
		like.Tweet = &id
	}
	return like
}
