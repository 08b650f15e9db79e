package utility

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SearchTerms splits a free-text query on whitespace.
func SearchTerms(query string) []string {
	return strings.Fields(query)
}

// TermRegexes builds one case-insensitive literal substring matcher per term.
func TermRegexes(terms []string) bson.A {
	regexes := bson.A{}
	for _, term := range terms {
		regexes = append(regexes, primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"})
	}
	return regexes
}

// AnyFieldMatches returns {$or: [{field: {$in: regexes}}, ...]}.
func AnyFieldMatches(regexes bson.A, fields ...string) bson.M {
	or := bson.A{}
	for _, field := range fields {
		or = append(or, bson.M{field: bson.M{"$in": regexes}})
	}
	return bson.M{"$or": or}
}
