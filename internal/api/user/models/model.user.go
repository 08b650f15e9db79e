// Package models defines the user document and the public profile shapes
// other domains embed through $lookup.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a stored account. Registration and login live in another service;
// this API only reads users.
type User struct {
	ID           primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Username     string               `json:"username" bson:"username" index:"unique"`
	Email        string               `json:"email" bson:"email" index:"unique"`
	FullName     string               `json:"fullName" bson:"fullName" index:"single"`
	Avatar       string               `json:"avatar" bson:"avatar"`
	CoverImage   string               `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	Password     string               `json:"-" bson:"password"`
	RefreshToken string               `json:"-" bson:"refreshToken,omitempty"`
	WatchHistory []primitive.ObjectID `json:"-" bson:"watchHistory"`
	CreatedAt    time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// OwnerSummary is the owner block embedded in video and comment listings.
type OwnerSummary struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id"`
	FullName string             `json:"fullName" bson:"fullName"`
	Username string             `json:"username" bson:"username"`
	Avatar   string             `json:"avatar" bson:"avatar"`
	Email    string             `json:"email,omitempty" bson:"email,omitempty"`
}

// ChannelProfile is a subscribed channel, which also shows its cover image.
type ChannelProfile struct {
	OwnerSummary `bson:",inline"`
	CoverImage   string `json:"coverImage" bson:"coverImage"`
}

// PublicFields lists the user fields safe to embed in other documents.
var PublicFields = []string{"_id", "fullName", "username", "avatar", "email"}

// PublicProjection projects PublicFields plus extra.
func PublicProjection(extra ...string) bson.D {
	d := bson.D{}
	for _, f := range append(append([]string{}, PublicFields...), extra...) {
		d = append(d, bson.E{Key: f, Value: 1})
	}
	return d
}

// SearchExcludedFields never leave the users collection in search results.
var SearchExcludedFields = []string{"password", "refreshToken", "accessToken", "watchHistory", "coverImage", "updatedAt"}

// SearchProjection hides SearchExcludedFields.
func SearchProjection() bson.D {
	d := bson.D{}
	for _, f := range SearchExcludedFields {
		d = append(d, bson.E{Key: f, Value: 0})
	}
	return d
}

// SearchResult is a user as returned by search.
type SearchResult struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Username  string             `json:"username" bson:"username"`
	Email     string             `json:"email" bson:"email"`
	FullName  string             `json:"fullName" bson:"fullName"`
	Avatar    string             `json:"avatar" bson:"avatar"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
