package global

import (
	"github.com/anurag2169/RiseStream-backend/config"
	"github.com/anurag2169/RiseStream-backend/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName holds the collection names used by the API.
type MongoDB_CollectionName struct {
	Users         string
	Videos        string
	Comments      string
	Likes         string
	Subscriptions string
	Playlists     string
}

var (
	Validate             *validator.Validate   // shared validator with custom rules
	MongoDB_Session      *mongo.Client         // MongoDB client
	MongoDB_ServerConfig *config.Configuration // server configuration
)

// MongoDB_ColNames is the fixed collection layout.
var MongoDB_ColNames = MongoDB_CollectionName{
	Users:         "users",
	Videos:        "videos",
	Comments:      "comments",
	Likes:         "likes",
	Subscriptions: "subscriptions",
	Playlists:     "playlists",
}

// RegistryCollections maps collection names to handles.
var RegistryCollections = registry.NewRegistry[*mongo.Collection]()
