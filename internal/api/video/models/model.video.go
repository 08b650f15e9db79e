package models

import (
	"time"

	usermodels "github.com/anurag2169/RiseStream-backend/internal/api/user/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video is a stored upload. Media files live with the upload backend; only
// their URLs are kept here.
type Video struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Duration    float64            `json:"duration" bson:"duration"` // seconds
	Views       int64              `json:"views" bson:"views"`
	IsPublished bool               `json:"isPublished" bson:"isPublished" index:"compound:videos_published_recent"`
	Owner       primitive.ObjectID `json:"owner" bson:"owner" index:"single"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" index:"compound:videos_published_recent,order:-1"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// VideoView is a video with its owner profile joined in.
type VideoView struct {
	ID          primitive.ObjectID      `json:"_id" bson:"_id"`
	VideoFile   string                  `json:"videoFile" bson:"videoFile"`
	Thumbnail   string                  `json:"thumbnail" bson:"thumbnail"`
	Title       string                  `json:"title" bson:"title"`
	Description string                  `json:"description" bson:"description"`
	Duration    float64                 `json:"duration" bson:"duration"`
	Views       int64                   `json:"views" bson:"views"`
	IsPublished bool                    `json:"isPublished" bson:"isPublished"`
	Owner       usermodels.OwnerSummary `json:"owner" bson:"owner"`
	CreatedAt   time.Time               `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt" bson:"updatedAt"`
}
