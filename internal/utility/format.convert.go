package utility

import (
	"fmt"
	"strings"

	"github.com/anurag2169/RiseStream-backend/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseObjectID parses a hex id, returning a validation error that names the field.
func ParseObjectID(id, field string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, common.NewValidationError(
			fmt.Sprintf("Invalid %s", field),
			[]string{fmt.Sprintf("%s must be a valid id", field)},
		)
	}
	return oid, nil
}

// String2ObjectID converts a hex id, returning NilObjectID when malformed.
func String2ObjectID(id string) primitive.ObjectID {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
}

// ContainsObjectID reports whether id is in ids.
func ContainsObjectID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
