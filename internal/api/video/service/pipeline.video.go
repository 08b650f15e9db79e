package videosvc

import (
	basemodels "github.com/anurag2169/RiseStream-backend/internal/api/base/models"
	usermodels "github.com/anurag2169/RiseStream-backend/internal/api/user/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func withOwner(pipeline mongo.Pipeline) mongo.Pipeline {
	return append(pipeline, usermodels.LookupProfile("owner", usermodels.PublicProjection())...)
}

func page(p basemodels.Pagination) []bson.D {
	return []bson.D{
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$skip", Value: p.Skip()}},
		{{Key: "$limit", Value: p.Limit}},
	}
}

// publishedPipeline lists published videos newest first.
func publishedPipeline(p basemodels.Pagination) mongo.Pipeline {
	pipeline := mongo.Pipeline{{{Key: "$match", Value: bson.D{{Key: "isPublished", Value: true}}}}}
	return withOwner(append(pipeline, page(p)...))
}

// ownerPipeline lists every video of owner, published or not.
func ownerPipeline(owner primitive.ObjectID, p basemodels.Pagination) mongo.Pipeline {
	pipeline := mongo.Pipeline{{{Key: "$match", Value: bson.D{{Key: "owner", Value: owner}}}}}
	return withOwner(append(pipeline, page(p)...))
}

func byIDPipeline(id primitive.ObjectID) mongo.Pipeline {
	return withOwner(mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		{{Key: "$limit", Value: 1}},
	})
}
