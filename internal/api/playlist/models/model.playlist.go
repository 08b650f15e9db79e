package models

import (
	"time"

	usermodels "github.com/anurag2169/RiseStream-backend/internal/api/user/models"
	videomodels "github.com/anurag2169/RiseStream-backend/internal/api/video/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Playlist is an ordered list of videos owned by a user.
type Playlist struct {
	ID          primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Name        string               `json:"name" bson:"name"`
	Description string               `json:"description" bson:"description"`
	Videos      []primitive.ObjectID `json:"videos" bson:"videos"`
	Owner       primitive.ObjectID   `json:"owner" bson:"owner" index:"single"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// PlaylistSummary is a playlist with its owner and plain member videos.
type PlaylistSummary struct {
	ID          primitive.ObjectID      `json:"_id" bson:"_id"`
	Name        string                  `json:"name" bson:"name"`
	Description string                  `json:"description" bson:"description"`
	Members     []primitive.ObjectID    `json:"-" bson:"members"`
	Videos      []videomodels.Video     `json:"videos" bson:"videos"`
	Owner       usermodels.OwnerSummary `json:"owner" bson:"owner"`
	CreatedAt   time.Time               `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt" bson:"updatedAt"`
}

// PlaylistDetail is a playlist whose member videos carry their own owner.
type PlaylistDetail struct {
	ID          primitive.ObjectID      `json:"_id" bson:"_id"`
	Name        string                  `json:"name" bson:"name"`
	Description string                  `json:"description" bson:"description"`
	Members     []primitive.ObjectID    `json:"-" bson:"members"`
	Videos      []videomodels.VideoView `json:"videos" bson:"videos"`
	Owner       usermodels.OwnerSummary `json:"owner" bson:"owner"`
	CreatedAt   time.Time               `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt" bson:"updatedAt"`
}
