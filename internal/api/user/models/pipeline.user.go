package models

import (
	"github.com/anurag2169/RiseStream-backend/internal/global"

	"go.mongodb.org/mongo-driver/bson"
)

// LookupProfile replaces localField with the referenced user's projected
// profile. Rows whose user no longer exists are dropped.
func LookupProfile(localField string, projection bson.D) []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: global.MongoDB_ColNames.Users},
			{Key: "localField", Value: localField},
			{Key: "foreignField", Value: "_id"},
			{Key: "pipeline", Value: bson.A{bson.D{{Key: "$project", Value: projection}}}},
			{Key: "as", Value: localField},
		}}},
		{{Key: "$unwind", Value: "$" + localField}},
	}
}
