package models

import (
	"time"

	usermodels "github.com/anurag2169/RiseStream-backend/internal/api/user/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a user's text on a video.
type Comment struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Content   string             `json:"content" bson:"content"`
	Video     primitive.ObjectID `json:"video" bson:"video" index:"compound:comments_video_recent"`
	Owner     primitive.ObjectID `json:"owner" bson:"owner" index:"single"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" index:"compound:comments_video_recent,order:-1"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CommentView is a comment with its author joined in.
type CommentView struct {
	ID        primitive.ObjectID      `json:"_id" bson:"_id"`
	Content   string                  `json:"content" bson:"content"`
	Video     primitive.ObjectID      `json:"video" bson:"video"`
	Owner     usermodels.OwnerSummary `json:"owner" bson:"owner"`
	CreatedAt time.Time               `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt" bson:"updatedAt"`
}
