package playlistsvc

import (
	usermodels "github.com/anurag2169/RiseStream-backend/internal/api/user/models"
	"github.com/anurag2169/RiseStream-backend/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// memberVideos joins the member ids to video documents, keeping the ids
// in members so the caller can restore playlist order.
func memberVideos(videoStages bson.A) []bson.D {
	lookup := bson.D{
		{Key: "from", Value: global.MongoDB_ColNames.Videos},
		{Key: "localField", Value: "videos"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "videoDetails"},
	}
	if len(videoStages) > 0 {
		lookup = append(lookup, bson.E{Key: "pipeline", Value: videoStages})
	}
	return []bson.D{
		{{Key: "$lookup", Value: lookup}},
		{{Key: "$set", Value: bson.D{
			{Key: "members", Value: "$videos"},
			{Key: "videos", Value: "$videoDetails"},
		}}},
		{{Key: "$unset", Value: "videoDetails"}},
	}
}

func ownerPlaylistsPipeline(owner primitive.ObjectID) mongo.Pipeline {
	pipeline := mongo.Pipeline{{{Key: "$match", Value: bson.D{{Key: "owner", Value: owner}}}}}
	pipeline = append(pipeline, usermodels.LookupProfile("owner", usermodels.PublicProjection())...)
	return append(pipeline, memberVideos(nil)...)
}

func playlistDetailPipeline(id primitive.ObjectID) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		{{Key: "$limit", Value: 1}},
	}
	pipeline = append(pipeline, usermodels.LookupProfile("owner", usermodels.PublicProjection())...)

	videoStages := bson.A{}
	for _, stage := range usermodels.LookupProfile("owner", usermodels.PublicProjection()) {
		videoStages = append(videoStages, stage)
	}
	return append(pipeline, memberVideos(videoStages)...)
}

// orderByMembers returns items in members order. Members without an item
// (deleted videos) are skipped.
func orderByMembers[T any](members []primitive.ObjectID, items []T, id func(T) primitive.ObjectID) []T {
	byID := make(map[primitive.ObjectID]T, len(items))
	for _, item := range items {
		byID[id(item)] = item
	}
	ordered := make([]T, 0, len(members))
	for _, m := range members {
		if item, ok := byID[m]; ok {
			ordered = append(ordered, item)
		}
	}
	return ordered
}
